package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateTaskInput) (domain.Task, error) {
	if !caller.Authenticated() {
		return domain.Task{}, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len([]rune(title)) > 200 {
		return domain.Task{}, fmt.Errorf("%w: title must be 1-200 characters", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if status != domain.TaskStatusPending && status != domain.TaskStatusCompleted {
		return domain.Task{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	category := input.Category
	if category == "" {
		category = domain.TaskCategoryLifeLongTerm
	}
	if !category.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	now := s.now().UTC()
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: input.Description,
		UserID:      caller.UserID,
		TaskDate:    midnightUTC(input.TaskDate),
		Status:      status,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == domain.TaskStatusCompleted {
		completedAt := now
		task.CompletedAt = &completedAt
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) ListForDate(ctx context.Context, caller domain.CallerIdentity, date time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrForbidden
	}
	return s.taskRepository.ListForDate(ctx, caller.UserID, midnightUTC(date), category)
}

func (s *TaskService) ListForRange(ctx context.Context, caller domain.CallerIdentity, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrForbidden
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidDateRange)
	}
	rangeStart := midnightUTC(start)
	rangeEnd := midnightUTC(end).Add(24*time.Hour - time.Millisecond)
	return s.taskRepository.ListForRange(ctx, caller.UserID, rangeStart, rangeEnd, category)
}

// ToggleStatus flips PENDING and COMPLETED, setting CompletedAt on the
// way up and clearing it on the way back. Only the owner may toggle.
func (s *TaskService) ToggleStatus(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.UserID != caller.UserID {
		return domain.Task{}, domain.ErrForbidden
	}

	now := s.now().UTC()
	if task.Status == domain.TaskStatusPending {
		task.Status = domain.TaskStatusCompleted
		completedAt := now
		task.CompletedAt = &completedAt
	} else {
		task.Status = domain.TaskStatusPending
		task.CompletedAt = nil
	}
	task.UpdatedAt = now

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task.UserID != caller.UserID {
		return domain.ErrForbidden
	}
	return s.taskRepository.Delete(ctx, id)
}

// Statistics resolves the requested range, fetches every task of the
// caller inside it and aggregates completion counts by category and by
// day in a single pass. Buckets with no tasks are absent from the maps.
func (s *TaskService) Statistics(ctx context.Context, caller domain.CallerIdentity, query domain.StatisticsQuery) (domain.Statistics, error) {
	if !caller.Authenticated() {
		return domain.Statistics{}, domain.ErrForbidden
	}

	resolved, err := ResolveStatisticsRange(query, s.now())
	if err != nil {
		return domain.Statistics{}, err
	}
	start, end, err := rangeBounds(resolved)
	if err != nil {
		return domain.Statistics{}, err
	}

	tasks, err := s.taskRepository.ListForRange(ctx, caller.UserID, start, end, nil)
	if err != nil {
		return domain.Statistics{}, err
	}

	stats := domain.Statistics{
		CategoryStats: make(map[domain.TaskCategory]domain.BucketCount),
		DailyStats:    make(map[string]domain.BucketCount),
		DateRange:     resolved,
	}
	for _, task := range tasks {
		completed := task.Status == domain.TaskStatusCompleted

		byCategory := stats.CategoryStats[task.Category]
		byCategory.Total++
		if completed {
			byCategory.Completed++
		}
		stats.CategoryStats[task.Category] = byCategory

		day := task.TaskDate.UTC().Format(dayLayout)
		byDay := stats.DailyStats[day]
		byDay.Total++
		if completed {
			byDay.Completed++
		}
		stats.DailyStats[day] = byDay

		stats.TotalTasks++
		if completed {
			stats.CompletedTasks++
		}
	}

	return stats, nil
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ ports.TaskService = (*TaskService)(nil)
