package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const getTaskQuery = `
SELECT id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at
FROM tasks
WHERE id = ?;
`

// status is an ENUM('PENDING','COMPLETED') column, so ORDER BY status
// sorts by declaration order: PENDING first.
const listTasksForDateQuery = `
SELECT id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at
FROM tasks
WHERE user_id = ? AND task_date = ?
ORDER BY status, created_at;
`

const listTasksForDateByCategoryQuery = `
SELECT id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at
FROM tasks
WHERE user_id = ? AND task_date = ? AND category = ?
ORDER BY status, created_at;
`

const listTasksForRangeQuery = `
SELECT id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at
FROM tasks
WHERE user_id = ? AND task_date BETWEEN ? AND ?
ORDER BY task_date DESC, status, created_at;
`

const listTasksForRangeByCategoryQuery = `
SELECT id, title, description, user_id, task_date, status, category, completed_at, created_at, updated_at
FROM tasks
WHERE user_id = ? AND task_date BETWEEN ? AND ? AND category = ?
ORDER BY task_date DESC, status, created_at;
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, task_date = ?, status = ?, category = ?, completed_at = ?, updated_at = ?
WHERE id = ?;
`

const deleteTaskQuery = `
DELETE FROM tasks WHERE id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	UserID      string         `db:"user_id"`
	TaskDate    time.Time      `db:"task_date"`
	Status      string         `db:"status"`
	Category    string         `db:"category"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID,
		task.Title,
		nullString(task.Description),
		task.UserID,
		task.TaskDate,
		string(task.Status),
		string(task.Category),
		nullTime(task.CompletedAt),
		task.CreatedAt,
		task.UpdatedAt,
	)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListForDate(ctx context.Context, userID string, date time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	var rows []taskRow
	var err error
	if category != nil {
		err = r.db.SelectContext(ctx, &rows, listTasksForDateByCategoryQuery, userID, date, string(*category))
	} else {
		err = r.db.SelectContext(ctx, &rows, listTasksForDateQuery, userID, date)
	}
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListForRange(ctx context.Context, userID string, start, end time.Time, category *domain.TaskCategory) ([]domain.Task, error) {
	var rows []taskRow
	var err error
	if category != nil {
		err = r.db.SelectContext(ctx, &rows, listTasksForRangeByCategoryQuery, userID, start, end, string(*category))
	} else {
		err = r.db.SelectContext(ctx, &rows, listTasksForRangeQuery, userID, start, end)
	}
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	result, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.Title,
		nullString(task.Description),
		task.TaskDate,
		string(task.Status),
		string(task.Category),
		nullTime(task.CompletedAt),
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return err
	}
	return noneAffectedAs(result, domain.ErrTaskNotFound)
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		UserID:    row.UserID,
		TaskDate:  row.TaskDate,
		Status:    domain.TaskStatus(row.Status),
		Category:  domain.TaskCategory(row.Category),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	return task
}
