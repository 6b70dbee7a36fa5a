package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
)

// placeholderCategorySlugs maps the legacy sentinel tokens the old
// client emitted when the live category list failed to load onto the
// real category slugs. Consulted only by ResolveRef, last.
var placeholderCategorySlugs = map[string]string{
	"temp-emotion-portraits":   "emotion-portraits",
	"temp-dream-archives":      "dream-archives",
	"temp-digital-archaeology": "digital-archaeology",
	"temp-body-chronicle":      "body-chronicle",
	"temp-temporal-slices":     "temporal-slices",
	"temp-life-ledger":         "life-ledger",
	"temp-shadow-collection":   "shadow-collection",
	"temp-alternate-reality":   "alternate-reality",
	"temp-recurring-motifs":    "recurring-motifs",
	"temp-lexicon-collection":  "lexicon-collection",
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
	now                func() time.Time
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository, now: time.Now}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepository.List(ctx)
}

// ResolveRef tries ref as a slug, then as an ID, then as a legacy
// placeholder token mapped to a real slug. Failure names the input so
// the caller sees what did not resolve.
func (s *CategoryService) ResolveRef(ctx context.Context, ref string) (domain.Category, error) {
	category, err := s.categoryRepository.GetBySlug(ctx, ref)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.Category{}, err
	}

	category, err = s.categoryRepository.GetByID(ctx, ref)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.Category{}, err
	}

	if mapped, ok := placeholderCategorySlugs[ref]; ok {
		category, err = s.categoryRepository.GetBySlug(ctx, mapped)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.Category{}, err
		}
	}

	return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, ref)
}

func (s *CategoryService) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateCategoryInput) (domain.Category, error) {
	if !caller.Authenticated() {
		return domain.Category{}, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || len([]rune(name)) > 50 {
		return domain.Category{}, fmt.Errorf("%w: name must be 1-50 characters", domain.ErrInvalidInput)
	}
	if input.Color != nil && !colorPattern.MatchString(*input.Color) {
		return domain.Category{}, fmt.Errorf("%w: color must be #RRGGBB", domain.ErrInvalidInput)
	}

	taken, err := s.categoryRepository.NameExists(ctx, name, "")
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, domain.ErrCategoryNameTaken
	}

	categorySlug, err := uniqueSlug(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return s.categoryRepository.SlugExists(ctx, candidate, "")
	})
	if err != nil {
		return domain.Category{}, err
	}

	now := s.now().UTC()
	category := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      categorySlug,
		Color:     input.Color,
		Icon:      input.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categoryRepository.Create(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateCategoryInput) (domain.Category, error) {
	if !caller.Authenticated() {
		return domain.Category{}, domain.ErrForbidden
	}

	category, err := s.categoryRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	if input.NameSet {
		name := strings.TrimSpace(input.Name)
		if name == "" || len([]rune(name)) > 50 {
			return domain.Category{}, fmt.Errorf("%w: name must be 1-50 characters", domain.ErrInvalidInput)
		}
		if name != category.Name {
			taken, err := s.categoryRepository.NameExists(ctx, name, id)
			if err != nil {
				return domain.Category{}, err
			}
			if taken {
				return domain.Category{}, domain.ErrCategoryNameTaken
			}
			newSlug, err := uniqueSlug(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
				return s.categoryRepository.SlugExists(ctx, candidate, id)
			})
			if err != nil {
				return domain.Category{}, err
			}
			category.Slug = newSlug
		}
		category.Name = name
	}
	if input.ColorSet {
		if input.Color != nil && !colorPattern.MatchString(*input.Color) {
			return domain.Category{}, fmt.Errorf("%w: color must be #RRGGBB", domain.ErrInvalidInput)
		}
		category.Color = input.Color
	}
	if input.IconSet {
		category.Icon = input.Icon
	}
	category.UpdatedAt = s.now().UTC()

	if err := s.categoryRepository.Update(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// Delete refuses to remove a category while any exhibit references it.
func (s *CategoryService) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	if !caller.Authenticated() {
		return domain.ErrForbidden
	}

	if _, err := s.categoryRepository.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.categoryRepository.CountExhibits(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return s.categoryRepository.Delete(ctx, id)
}

var _ ports.CategoryService = (*CategoryService)(nil)
