package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TaskDate    string  `json:"task_date"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	TaskDate    string  `json:"task_date" binding:"required,datetime=2006-01-02"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
	Category    *string `json:"category" binding:"omitempty,oneof=STUDY_LONG_TERM STUDY_SHORT_TERM LIFE_LONG_TERM LIFE_SHORT_TERM"`
}

type BucketCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type StatisticsResponse struct {
	CategoryStats  map[string]BucketCount `json:"categoryStats"`
	DailyStats     map[string]BucketCount `json:"dailyStats"`
	TotalTasks     int                    `json:"totalTasks"`
	CompletedTasks int                    `json:"completedTasks"`
	DateRange      DateRange              `json:"dateRange"`
}
