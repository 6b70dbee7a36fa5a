package ports

import (
	"context"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type CommentRepository interface {
	GetByID(ctx context.Context, id string) (domain.Comment, error)
	// ListTopLevel returns up to limit top-level comments newest first,
	// starting after the cursor comment when one is given. Direct
	// replies are eagerly attached oldest first.
	ListTopLevel(ctx context.Context, exhibitID string, cursor *string, limit int) ([]domain.Comment, error)
	// ListThread returns the whole thread for an exhibit (all top-level
	// comments newest first, replies oldest first).
	ListThread(ctx context.Context, exhibitID string) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) error
	// DeleteWithReplies removes the comment and its direct replies as a
	// single all-or-nothing unit.
	DeleteWithReplies(ctx context.Context, id string) error
}

type CommentService interface {
	List(ctx context.Context, exhibitID string, cursor *string) (domain.CommentPage, error)
	Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCommentInput) (domain.Comment, error)
	Delete(ctx context.Context, caller domain.CallerIdentity, id string) error
}
