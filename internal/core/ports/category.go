package ports

import (
	"context"

	"github.com/go-to-sky/onelife/internal/core/domain"
)

type CategoryRepository interface {
	// List returns all categories ordered by name ascending with their
	// exhibit counts attached.
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (domain.Category, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	NameExists(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id string) error
	CountExhibits(ctx context.Context, id string) (int, error)
}

// CategoryResolver maps a caller-supplied category reference (ID, slug
// or legacy placeholder token) to the canonical category record.
type CategoryResolver interface {
	ResolveRef(ctx context.Context, ref string) (domain.Category, error)
}

type CategoryService interface {
	CategoryResolver

	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCategoryInput) (domain.Category, error)
	Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateCategoryInput) (domain.Category, error)
	Delete(ctx context.Context, caller domain.CallerIdentity, id string) error
}
