package ports

import (
	"context"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type ExhibitRepository interface {
	// List returns up to limit exhibits ordered by creation time
	// descending, starting after the cursor exhibit when one is given.
	// Category, author summary, tags and comment counts are attached.
	List(ctx context.Context, filter domain.ExhibitFilter, limit int) ([]domain.Exhibit, error)
	GetByID(ctx context.Context, id string) (domain.Exhibit, error)
	// GetBySlug attaches category, author summary, tags and the comment
	// count, but not the comment thread.
	GetBySlug(ctx context.Context, slug string) (domain.Exhibit, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, exhibit domain.Exhibit) error
	Update(ctx context.Context, exhibit domain.Exhibit) error
	Delete(ctx context.Context, id string) error
	// ReplaceTags relinks the exhibit to exactly the given tag IDs.
	ReplaceTags(ctx context.Context, exhibitID string, tagIDs []string) error
}

type TagRepository interface {
	GetByName(ctx context.Context, name string) (domain.Tag, bool, error)
	Create(ctx context.Context, tag domain.Tag) error
}

type ExhibitService interface {
	List(ctx context.Context, caller domain.CallerIdentity, filter domain.ExhibitFilter) (domain.ExhibitPage, error)
	GetBySlug(ctx context.Context, caller domain.CallerIdentity, slug string) (domain.Exhibit, error)
	Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateExhibitInput) (domain.Exhibit, error)
	Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateExhibitInput) (domain.Exhibit, error)
	Delete(ctx context.Context, caller domain.CallerIdentity, id string) error
}
