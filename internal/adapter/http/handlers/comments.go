package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/adapter/http/mapper"
	"github.com/go-to-sky/onelife/internal/adapter/http/middleware"
	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
	"github.com/go-to-sky/onelife/pkg/apierrors"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments returns one page of top-level comments for an exhibit,
// with direct replies attached.
func (h *CommentHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)

	exhibitID := c.Query("exhibit_id")
	if exhibitID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang))
		return
	}

	var cursor *string
	if value := c.Query("cursor"); value != "" {
		cursor = &value
	}

	page, err := h.commentService.List(c.Request.Context(), exhibitID, cursor)
	if err != nil {
		zap.L().Error("failed to list comments", zap.String("exhibit_id", exhibitID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListComments, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentPage(page))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang))
		return
	}

	input := domain.CreateCommentInput{
		ExhibitID: req.ExhibitID,
		Content:   req.Content,
		ParentID:  req.ParentID,
	}

	comment, err := h.commentService.Create(c.Request.Context(), caller, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang))
		case errors.Is(err, domain.ErrExhibitNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgExhibitNotFound, lang))
		case errors.Is(err, domain.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang))
		default:
			zap.L().Error("failed to create comment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateComment, lang))
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	commentID := c.Param("id")
	if commentID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), caller, commentID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgCommentForbidden, lang))
		default:
			zap.L().Error("failed to delete comment", zap.String("comment_id", commentID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteComment, lang))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
