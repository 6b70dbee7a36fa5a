package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/adapter/http/handlers"
	"github.com/go-to-sky/onelife/internal/adapter/http/middleware"
	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/pkg/apierrors"
	"github.com/go-to-sky/onelife/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryRouter(handler *handlers.CategoryHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), middleware.IdentityMiddleware())
	api.GET("/categories", handler.ListCategories)
	api.POST("/categories", handler.CreateCategory)
	api.PATCH("/categories/:id", handler.UpdateCategory)
	api.DELETE("/categories/:id", handler.DeleteCategory)
	return router
}

func doCategoryRequest(router *gin.Engine, method, target, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCategoryHandler_ListCategories_Success(t *testing.T) {
	color := "#FF8800"
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	serviceMock := new(categoryServiceMock)
	serviceMock.On("List", mock.Anything).Return([]domain.Category{
		{ID: "cat-1", Name: "Life Ledger", Slug: "life-ledger", Color: &color, ExhibitCount: 4, CreatedAt: createdAt, UpdatedAt: createdAt},
		{ID: "cat-2", Name: "Dream Archives", Slug: "dream-archives"},
	}, nil).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodGet, "/api/categories", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "life-ledger", got[0].Slug)
	require.Equal(t, 4, got[0].ExhibitCount)
	require.NotNil(t, got[0].Color)
	require.Equal(t, "#FF8800", *got[0].Color)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_Success(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("Create", mock.Anything,
		domain.CallerIdentity{UserID: "user-1"},
		mock.MatchedBy(func(input domain.CreateCategoryInput) bool {
			return input.Name == "Shadow Collection" && input.Color != nil && *input.Color == "#222222"
		})).Return(domain.Category{ID: "cat-3", Name: "Shadow Collection", Slug: "shadow-collection"}, nil).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodPost, "/api/categories",
		`{"name":"Shadow Collection","color":"#222222"}`, "user-1")

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "shadow-collection", got.Slug)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_DuplicateName(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(domain.Category{}, domain.ErrCategoryNameTaken).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodPost, "/api/categories", `{"name":"Reading"}`, "user-1")

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "A category with this name already exists", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_BadColor(t *testing.T) {
	router := newCategoryRouter(handlers.NewCategoryHandler(new(categoryServiceMock)))
	rec := doCategoryRequest(router, http.MethodPost, "/api/categories",
		`{"name":"x","color":"not-a-color"}`, "user-1")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid category payload", got.ErrDetails.Message)
}

func TestCategoryHandler_CreateCategory_Unauthenticated(t *testing.T) {
	router := newCategoryRouter(handlers.NewCategoryHandler(new(categoryServiceMock)))
	rec := doCategoryRequest(router, http.MethodPost, "/api/categories", `{"name":"x"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCategoryHandler_UpdateCategory_ClearsIconWithNull(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("Update", mock.Anything,
		domain.CallerIdentity{UserID: "user-1"}, "cat-1",
		mock.MatchedBy(func(input domain.UpdateCategoryInput) bool {
			return input.IconSet && input.Icon == nil && !input.NameSet
		})).Return(domain.Category{ID: "cat-1", Name: "Life Ledger", Slug: "life-ledger"}, nil).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodPatch, "/api/categories/cat-1", `{"icon":null}`, "user-1")

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_DeleteCategory_InUse(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("Delete", mock.Anything, domain.CallerIdentity{UserID: "user-1"}, "cat-1").Return(domain.ErrCategoryInUse).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodDelete, "/api/categories/cat-1", "", "user-1")

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Cannot delete a category that still has exhibits", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_DeleteCategory_NotFound(t *testing.T) {
	serviceMock := new(categoryServiceMock)
	serviceMock.On("Delete", mock.Anything, mock.Anything, "missing").Return(domain.ErrCategoryNotFound).Once()

	router := newCategoryRouter(handlers.NewCategoryHandler(serviceMock))
	rec := doCategoryRequest(router, http.MethodDelete, "/api/categories/missing", "", "user-1")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Category not found: missing", got.ErrDetails.Message)
}
