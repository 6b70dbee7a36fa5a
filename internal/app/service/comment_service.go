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

const commentPageSize = 20

type CommentService struct {
	commentRepository ports.CommentRepository
	exhibitRepository ports.ExhibitRepository
	now               func() time.Time
}

func NewCommentService(commentRepository ports.CommentRepository, exhibitRepository ports.ExhibitRepository) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		exhibitRepository: exhibitRepository,
		now:               time.Now,
	}
}

func (s *CommentService) List(ctx context.Context, exhibitID string, cursor *string) (domain.CommentPage, error) {
	items, err := s.commentRepository.ListTopLevel(ctx, exhibitID, cursor, commentPageSize+1)
	if err != nil {
		return domain.CommentPage{}, err
	}

	page := domain.CommentPage{Items: items}
	if len(items) > commentPageSize {
		page.Items = items[:commentPageSize]
		next := page.Items[commentPageSize-1].ID
		page.NextCursor = &next
	}
	return page, nil
}

func (s *CommentService) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCommentInput) (domain.Comment, error) {
	if !caller.Authenticated() {
		return domain.Comment{}, domain.ErrForbidden
	}

	content := strings.TrimSpace(input.Content)
	if content == "" || len([]rune(content)) > 5000 {
		return domain.Comment{}, fmt.Errorf("%w: content must be 1-5000 characters", domain.ErrInvalidInput)
	}

	if _, err := s.exhibitRepository.GetByID(ctx, input.ExhibitID); err != nil {
		return domain.Comment{}, err
	}

	if input.ParentID != nil {
		parent, err := s.commentRepository.GetByID(ctx, *input.ParentID)
		if err != nil {
			return domain.Comment{}, err
		}
		if parent.ExhibitID != input.ExhibitID {
			return domain.Comment{}, fmt.Errorf("%w: parent comment belongs to another exhibit", domain.ErrInvalidInput)
		}
		// One level of nesting only.
		if parent.ParentID != nil {
			return domain.Comment{}, fmt.Errorf("%w: replies cannot be nested further", domain.ErrInvalidInput)
		}
	}

	now := s.now().UTC()
	comment := domain.Comment{
		ID:        uuid.NewString(),
		ExhibitID: input.ExhibitID,
		Content:   content,
		AuthorID:  caller.UserID,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// Delete succeeds for the comment's author and for administrators, and
// removes the comment together with its direct replies atomically.
func (s *CommentService) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	comment, err := s.commentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != caller.UserID && !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return s.commentRepository.DeleteWithReplies(ctx, id)
}

var _ ports.CommentService = (*CommentService)(nil)
