package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/adapter/http/mapper"
	"github.com/go-to-sky/onelife/internal/adapter/http/middleware"
	"github.com/go-to-sky/onelife/internal/adapter/http/validation"
	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
	"github.com/go-to-sky/onelife/pkg/apierrors"
)

type ExhibitHandler struct {
	exhibitService ports.ExhibitService
}

func NewExhibitHandler(exhibitService ports.ExhibitService) *ExhibitHandler {
	return &ExhibitHandler{exhibitService: exhibitService}
}

func (h *ExhibitHandler) ListExhibits(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)

	var filter domain.ExhibitFilter

	if value := c.Query("category_id"); value != "" {
		filter.CategoryID = &value
	}
	if value := c.Query("visibility"); value != "" {
		visibility := domain.Visibility(value)
		if !visibility.Valid() {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
			return
		}
		filter.Visibility = &visibility
	}
	if value := c.Query("cursor"); value != "" {
		filter.Cursor = &value
	}
	filter.ShowAll = c.Query("show_all") == "true"
	filter.Mine = c.Query("mine") == "true"
	if filter.Mine && !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	if value := c.Query("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
			return
		}
		filter.Limit = limit
	}

	page, err := h.exhibitService.List(c.Request.Context(), caller, filter)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgShowAllForbidden, lang))
			return
		}

		zap.L().Error("failed to list exhibits", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListExhibits, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToExhibitPage(page))
}

func (h *ExhibitHandler) GetExhibit(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	exhibit, err := h.exhibitService.GetBySlug(c.Request.Context(), caller, slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExhibitNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgExhibitNotFound, lang))
		case errors.Is(err, domain.ErrExhibitPrivate):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgExhibitPrivate, lang))
		default:
			zap.L().Error("failed to get exhibit", zap.String("slug", slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListExhibits, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToExhibitItem(exhibit))
}

func (h *ExhibitHandler) CreateExhibit(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	var req dto.CreateExhibitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		return
	}

	input := domain.CreateExhibitInput{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		CoverImage:   req.CoverImage,
		CategoryRef:  req.CategoryID,
		EmotionScore: req.EmotionScore,
		Tags:         req.Tags,
		Payload:      domain.ExhibitPayload{SpecialTags: req.SpecialTags},
	}
	if req.Visibility != nil {
		input.Visibility = domain.Visibility(*req.Visibility)
	}
	if req.ExhibitDate != nil {
		parsed, err := validation.ParseExhibitDate(*req.ExhibitDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
			return
		}
		input.ExhibitDate = &parsed
	}

	exhibit, err := h.exhibitService.Create(c.Request.Context(), caller, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang, map[string]any{"Ref": req.CategoryID}))
		case errors.Is(err, domain.ErrSlugConflict):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSlugConflict, lang))
		default:
			zap.L().Error("failed to create exhibit", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateExhibit, lang))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateExhibitResponse{ID: exhibit.ID, Slug: exhibit.Slug})
}

func (h *ExhibitHandler) UpdateExhibit(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	exhibitID := c.Param("id")
	if exhibitID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		return
	}

	var req dto.UpdateExhibitRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		return
	}

	input, err := validation.BuildUpdateExhibitInput(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		return
	}

	exhibit, err := h.exhibitService.Update(c.Request.Context(), caller, exhibitID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidExhibitPayload, lang))
		case errors.Is(err, domain.ErrExhibitNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgExhibitNotFound, lang))
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang, map[string]any{"Ref": input.CategoryRef}))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgExhibitForbidden, lang))
		case errors.Is(err, domain.ErrSlugConflict):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSlugConflict, lang))
		default:
			zap.L().Error("failed to update exhibit", zap.String("exhibit_id", exhibitID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateExhibit, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToExhibitItem(exhibit))
}

func (h *ExhibitHandler) DeleteExhibit(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	exhibitID := c.Param("id")
	if exhibitID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.exhibitService.Delete(c.Request.Context(), caller, exhibitID); err != nil {
		switch {
		case errors.Is(err, domain.ErrExhibitNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgExhibitNotFound, lang))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgExhibitForbidden, lang))
		default:
			zap.L().Error("failed to delete exhibit", zap.String("exhibit_id", exhibitID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteExhibit, lang))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
