package mapper

import (
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		TaskDate:  task.TaskDate.UTC().Format("2006-01-02"),
		Status:    string(task.Status),
		Category:  string(task.Category),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}

func ToStatisticsResponse(stats domain.Statistics) dto.StatisticsResponse {
	response := dto.StatisticsResponse{
		CategoryStats:  make(map[string]dto.BucketCount, len(stats.CategoryStats)),
		DailyStats:     make(map[string]dto.BucketCount, len(stats.DailyStats)),
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		DateRange: dto.DateRange{
			StartDate: stats.DateRange.StartDate,
			EndDate:   stats.DateRange.EndDate,
		},
	}
	for category, counts := range stats.CategoryStats {
		response.CategoryStats[string(category)] = dto.BucketCount{Total: counts.Total, Completed: counts.Completed}
	}
	for day, counts := range stats.DailyStats {
		response.DailyStats[day] = dto.BucketCount{Total: counts.Total, Completed: counts.Completed}
	}
	return response
}
