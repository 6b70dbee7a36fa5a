package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/adapter/http/mapper"
	"github.com/go-to-sky/onelife/internal/adapter/http/middleware"
	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
	"github.com/go-to-sky/onelife/pkg/apierrors"
)

const dayLayout = "2006-01-02"

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	taskDate, err := time.ParseInLocation(dayLayout, req.TaskDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		TaskDate:    taskDate,
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Category != nil {
		input.Category = domain.TaskCategory(*req.Category)
	}

	task, err := h.taskService.Create(c.Request.Context(), caller, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// ListTasks returns the caller's tasks for one calendar day, defaulting
// to today.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	date := time.Now().UTC()
	if value := c.Query("date"); value != "" {
		parsed, err := time.ParseInLocation(dayLayout, value, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
			return
		}
		date = parsed
	}

	category, ok := taskCategoryFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	tasks, err := h.taskService.ListForDate(c.Request.Context(), caller, date, category)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ListTaskRange(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	start, err := time.ParseInLocation(dayLayout, c.Query("start_date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang))
		return
	}
	end, err := time.ParseInLocation(dayLayout, c.Query("end_date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang))
		return
	}

	category, ok := taskCategoryFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	tasks, err := h.taskService.ListForRange(c.Request.Context(), caller, start, end, category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang))
			return
		}

		zap.L().Error("failed to list task range", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) ToggleTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	task, err := h.taskService.ToggleStatus(c.Request.Context(), caller, taskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgTaskForbidden, lang))
		default:
			zap.L().Error("failed to toggle task status", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailToggleTask, lang))
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), caller, taskID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgTaskForbidden, lang))
		default:
			zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) GetStatistics(c *gin.Context) {
	lang := middleware.GetLang(c)
	caller := middleware.GetCaller(c)
	if !caller.Authenticated() {
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
		return
	}

	query := domain.StatisticsQuery{
		Range:     domain.StatisticsRange(c.Query("type")),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if !query.Range.Valid() {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang))
		return
	}

	stats, err := h.taskService.Statistics(c.Request.Context(), caller, query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang))
			return
		}

		zap.L().Error("failed to compute task statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTaskStatistics, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatisticsResponse(stats))
}

func taskCategoryFilter(c *gin.Context) (*domain.TaskCategory, bool) {
	value := c.Query("category")
	if value == "" {
		return nil, true
	}
	category := domain.TaskCategory(value)
	if !category.Valid() {
		return nil, false
	}
	return &category, true
}
