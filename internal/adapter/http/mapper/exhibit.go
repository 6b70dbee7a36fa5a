package mapper

import (
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/core/domain"
)

func ToExhibitPage(page domain.ExhibitPage) dto.ExhibitPage {
	items := make([]dto.ExhibitItem, 0, len(page.Items))
	for _, exhibit := range page.Items {
		items = append(items, ToExhibitItem(exhibit))
	}
	return dto.ExhibitPage{Items: items, NextCursor: page.NextCursor}
}

func ToExhibitItem(exhibit domain.Exhibit) dto.ExhibitItem {
	item := dto.ExhibitItem{
		ID:           exhibit.ID,
		Title:        exhibit.Title,
		Slug:         exhibit.Slug,
		Content:      exhibit.Content,
		Visibility:   string(exhibit.Visibility),
		SpecialTags:  exhibit.Payload.SpecialTags,
		CreatedAt:    exhibit.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    exhibit.UpdatedAt.Format(time.RFC3339),
		CommentCount: exhibit.CommentCount,
	}

	if exhibit.Description != nil {
		value := *exhibit.Description
		item.Description = &value
	}

	if exhibit.CoverImage != nil {
		value := *exhibit.CoverImage
		item.CoverImage = &value
	}

	if exhibit.EmotionScore != nil {
		value := *exhibit.EmotionScore
		item.EmotionScore = &value
	}

	if exhibit.ExhibitDate != nil {
		value := exhibit.ExhibitDate.UTC().Format(time.RFC3339)
		item.ExhibitDate = &value
	}

	if exhibit.Category != nil {
		category := ToCategoryItem(*exhibit.Category)
		item.Category = &category
	}

	if exhibit.Author != nil {
		item.Author = toAuthorItem(*exhibit.Author)
	}

	if len(exhibit.Tags) > 0 {
		item.Tags = make([]dto.TagItem, 0, len(exhibit.Tags))
		for _, tag := range exhibit.Tags {
			item.Tags = append(item.Tags, dto.TagItem{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
		}
	}

	if len(exhibit.Comments) > 0 {
		item.Comments = ToCommentItems(exhibit.Comments)
	}

	return item
}

func toAuthorItem(author domain.UserSummary) *dto.AuthorItem {
	item := dto.AuthorItem{ID: author.ID, Name: author.Name}
	if author.Image != nil {
		value := *author.Image
		item.Image = &value
	}
	return &item
}
