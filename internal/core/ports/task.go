package ports

import (
	"context"
	"time"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	GetByID(ctx context.Context, id string) (domain.Task, error)
	// ListForDate returns the user's tasks for one exact calendar day
	// (midnight UTC), PENDING before COMPLETED, then by creation order.
	ListForDate(ctx context.Context, userID string, date time.Time, category *domain.TaskCategory) ([]domain.Task, error)
	// ListForRange scans [start, end] inclusive, ordered by date
	// descending, then status, then creation order.
	ListForRange(ctx context.Context, userID string, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateTaskInput) (domain.Task, error)
	ListForDate(ctx context.Context, caller domain.CallerIdentity, date time.Time, category *domain.TaskCategory) ([]domain.Task, error)
	ListForRange(ctx context.Context, caller domain.CallerIdentity, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error)
	ToggleStatus(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error)
	Delete(ctx context.Context, caller domain.CallerIdentity, id string) error
	Statistics(ctx context.Context, caller domain.CallerIdentity, query domain.StatisticsQuery) (domain.Statistics, error)
}
