package mapper

import (
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	item := dto.CategoryItem{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		ExhibitCount: category.ExhibitCount,
	}

	if category.Color != nil {
		value := *category.Color
		item.Color = &value
	}

	if category.Icon != nil {
		value := *category.Icon
		item.Icon = &value
	}

	if !category.CreatedAt.IsZero() {
		item.CreatedAt = category.CreatedAt.Format(time.RFC3339)
	}
	if !category.UpdatedAt.IsZero() {
		item.UpdatedAt = category.UpdatedAt.Format(time.RFC3339)
	}

	return item
}
