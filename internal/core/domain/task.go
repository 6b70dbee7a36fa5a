package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// TaskCategory is one of the four fixed buckets combining a domain
// (study/life) with a horizon (long/short term).
type TaskCategory string

const (
	TaskCategoryStudyLongTerm  TaskCategory = "STUDY_LONG_TERM"
	TaskCategoryStudyShortTerm TaskCategory = "STUDY_SHORT_TERM"
	TaskCategoryLifeLongTerm   TaskCategory = "LIFE_LONG_TERM"
	TaskCategoryLifeShortTerm  TaskCategory = "LIFE_SHORT_TERM"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case TaskCategoryStudyLongTerm, TaskCategoryStudyShortTerm,
		TaskCategoryLifeLongTerm, TaskCategoryLifeShortTerm:
		return true
	}
	return false
}

// Task is a to-do item scoped to one user and one calendar day.
// TaskDate is midnight UTC of that day. CompletedAt is non-nil if and
// only if Status is COMPLETED.
type Task struct {
	ID          string
	Title       string
	Description *string
	UserID      string
	TaskDate    time.Time
	Status      TaskStatus
	Category    TaskCategory
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	TaskDate    time.Time
	Status      TaskStatus
	Category    TaskCategory
}
