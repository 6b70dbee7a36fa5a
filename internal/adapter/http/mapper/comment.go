package mapper

import (
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/core/domain"
)

func ToCommentPage(page domain.CommentPage) dto.CommentPage {
	return dto.CommentPage{
		Items:      ToCommentItems(page.Items),
		NextCursor: page.NextCursor,
	}
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	item := dto.CommentItem{
		ID:        comment.ID,
		ExhibitID: comment.ExhibitID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}

	if comment.ParentID != nil {
		value := *comment.ParentID
		item.ParentID = &value
	}

	if comment.Author != nil {
		item.Author = toAuthorItem(*comment.Author)
	}

	if len(comment.Replies) > 0 {
		item.Replies = ToCommentItems(comment.Replies)
	}

	return item
}
