package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

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

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		return
	}

	input := domain.CreateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	}

	category, err := h.categoryService.Create(c.Request.Context(), caller, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		case errors.Is(err, domain.ErrCategoryNameTaken):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgCategoryNameTaken, lang))
		case errors.Is(err, domain.ErrSlugConflict):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSlugConflict, lang))
		default:
			zap.L().Error("failed to create category", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang))
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		return
	}

	input, err := validation.BuildUpdateCategoryInput(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), caller, categoryID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang))
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang, map[string]any{"Ref": categoryID}))
		case errors.Is(err, domain.ErrCategoryNameTaken):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgCategoryNameTaken, lang))
		case errors.Is(err, domain.ErrSlugConflict):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgSlugConflict, lang))
		default:
			zap.L().Error("failed to update category", zap.String("category_id", categoryID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateCategory, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), caller, categoryID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateErrorWithData(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang, map[string]any{"Ref": categoryID}))
		case errors.Is(err, domain.ErrCategoryInUse):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgCategoryInUse, lang))
		default:
			zap.L().Error("failed to delete category", zap.String("category_id", categoryID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteCategory, lang))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
