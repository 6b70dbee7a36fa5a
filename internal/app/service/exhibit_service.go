package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/internal/core/ports"
	"github.com/go-to-sky/onelife/pkg/slug"
)

const (
	defaultExhibitPageSize = 20
	maxExhibitPageSize     = 100
)

type ExhibitService struct {
	exhibitRepository ports.ExhibitRepository
	tagRepository     ports.TagRepository
	commentRepository ports.CommentRepository
	categoryResolver  ports.CategoryResolver
	now               func() time.Time
}

func NewExhibitService(
	exhibitRepository ports.ExhibitRepository,
	tagRepository ports.TagRepository,
	commentRepository ports.CommentRepository,
	categoryResolver ports.CategoryResolver,
) *ExhibitService {
	return &ExhibitService{
		exhibitRepository: exhibitRepository,
		tagRepository:     tagRepository,
		commentRepository: commentRepository,
		categoryResolver:  categoryResolver,
		now:               time.Now,
	}
}

// List pages exhibits newest first. Without ShowAll or Mine the
// listing is visibility-filtered (defaulting to PUBLIC); a filter on a
// non-public visibility needs the same privilege as reading those
// exhibits, so it is owner-scoped via Mine or admin-only. ShowAll drops
// the filter entirely and is reserved for administrators.
func (s *ExhibitService) List(ctx context.Context, caller domain.CallerIdentity, filter domain.ExhibitFilter) (domain.ExhibitPage, error) {
	if filter.ShowAll && !caller.IsAdmin {
		return domain.ExhibitPage{}, domain.ErrForbidden
	}
	if filter.Mine {
		if !caller.Authenticated() {
			return domain.ExhibitPage{}, domain.ErrForbidden
		}
		userID := caller.UserID
		filter.UserID = &userID
	}
	if filter.Visibility != nil && *filter.Visibility != domain.VisibilityPublic &&
		!filter.Mine && !caller.IsAdmin {
		return domain.ExhibitPage{}, domain.ErrForbidden
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultExhibitPageSize
	}
	if limit > maxExhibitPageSize {
		limit = maxExhibitPageSize
	}
	if !filter.ShowAll && !filter.Mine && filter.Visibility == nil {
		visibility := domain.VisibilityPublic
		filter.Visibility = &visibility
	}

	items, err := s.exhibitRepository.List(ctx, filter, limit+1)
	if err != nil {
		return domain.ExhibitPage{}, err
	}

	page := domain.ExhibitPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		next := page.Items[limit-1].ID
		page.NextCursor = &next
	}
	return page, nil
}

// GetBySlug loads the full exhibit including its comment thread. A
// PRIVATE exhibit is a domain error for everyone but its owner and
// administrators; nothing of it is returned.
func (s *ExhibitService) GetBySlug(ctx context.Context, caller domain.CallerIdentity, slugValue string) (domain.Exhibit, error) {
	exhibit, err := s.exhibitRepository.GetBySlug(ctx, slugValue)
	if err != nil {
		return domain.Exhibit{}, err
	}
	if exhibit.Visibility == domain.VisibilityPrivate &&
		exhibit.UserID != caller.UserID && !caller.IsAdmin {
		return domain.Exhibit{}, domain.ErrExhibitPrivate
	}

	comments, err := s.commentRepository.ListThread(ctx, exhibit.ID)
	if err != nil {
		return domain.Exhibit{}, err
	}
	exhibit.Comments = comments
	return exhibit, nil
}

func (s *ExhibitService) Create(ctx context.Context, caller domain.CallerIdentity, input domain.CreateExhibitInput) (domain.Exhibit, error) {
	if !caller.Authenticated() {
		return domain.Exhibit{}, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len([]rune(title)) > 200 {
		return domain.Exhibit{}, fmt.Errorf("%w: title must be 1-200 characters", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return domain.Exhibit{}, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidInput)
	}
	if err := validateEmotionScore(input.EmotionScore); err != nil {
		return domain.Exhibit{}, err
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}
	if !visibility.Valid() {
		return domain.Exhibit{}, fmt.Errorf("%w: unknown visibility %q", domain.ErrInvalidInput, visibility)
	}

	category, err := s.categoryResolver.ResolveRef(ctx, input.CategoryRef)
	if err != nil {
		return domain.Exhibit{}, err
	}

	exhibitSlug, err := uniqueSlug(ctx, title, func(ctx context.Context, candidate string) (bool, error) {
		return s.exhibitRepository.SlugExists(ctx, candidate, "")
	})
	if err != nil {
		return domain.Exhibit{}, err
	}

	now := s.now().UTC()
	exhibit := domain.Exhibit{
		ID:           uuid.NewString(),
		Title:        title,
		Slug:         exhibitSlug,
		Description:  input.Description,
		Content:      input.Content,
		CoverImage:   normalizeCoverImage(input.CoverImage),
		CategoryID:   category.ID,
		Visibility:   visibility,
		EmotionScore: input.EmotionScore,
		ExhibitDate:  input.ExhibitDate,
		UserID:       caller.UserID,
		Payload:      input.Payload,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.exhibitRepository.Create(ctx, exhibit); err != nil {
		return domain.Exhibit{}, err
	}

	if len(input.Tags) > 0 {
		tags, err := s.ensureTags(ctx, input.Tags)
		if err != nil {
			return domain.Exhibit{}, err
		}
		if err := s.exhibitRepository.ReplaceTags(ctx, exhibit.ID, tagIDs(tags)); err != nil {
			return domain.Exhibit{}, err
		}
		exhibit.Tags = tags
	}

	exhibit.Category = &category
	return exhibit, nil
}

// Update is owner-only. A changed title regenerates the slug with the
// same probe loop, excluding the exhibit itself from the collision
// check.
func (s *ExhibitService) Update(ctx context.Context, caller domain.CallerIdentity, id string, input domain.UpdateExhibitInput) (domain.Exhibit, error) {
	exhibit, err := s.exhibitRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Exhibit{}, err
	}
	if exhibit.UserID != caller.UserID {
		return domain.Exhibit{}, domain.ErrForbidden
	}

	if input.TitleSet {
		title := strings.TrimSpace(input.Title)
		if title == "" || len([]rune(title)) > 200 {
			return domain.Exhibit{}, fmt.Errorf("%w: title must be 1-200 characters", domain.ErrInvalidInput)
		}
		if title != exhibit.Title {
			newSlug, err := uniqueSlug(ctx, title, func(ctx context.Context, candidate string) (bool, error) {
				return s.exhibitRepository.SlugExists(ctx, candidate, id)
			})
			if err != nil {
				return domain.Exhibit{}, err
			}
			exhibit.Slug = newSlug
		}
		exhibit.Title = title
	}
	if input.ContentSet {
		if strings.TrimSpace(input.Content) == "" {
			return domain.Exhibit{}, fmt.Errorf("%w: content must not be empty", domain.ErrInvalidInput)
		}
		exhibit.Content = input.Content
	}
	if input.DescriptionSet {
		exhibit.Description = input.Description
	}
	if input.CoverImageSet {
		exhibit.CoverImage = normalizeCoverImage(input.CoverImage)
	}
	if input.VisibilitySet {
		if !input.Visibility.Valid() {
			return domain.Exhibit{}, fmt.Errorf("%w: unknown visibility %q", domain.ErrInvalidInput, input.Visibility)
		}
		exhibit.Visibility = input.Visibility
	}
	if input.EmotionScoreSet {
		if err := validateEmotionScore(input.EmotionScore); err != nil {
			return domain.Exhibit{}, err
		}
		exhibit.EmotionScore = input.EmotionScore
	}
	if input.ExhibitDateSet {
		exhibit.ExhibitDate = input.ExhibitDate
	}
	if input.PayloadSet {
		exhibit.Payload = input.Payload
	}
	if input.CategorySet {
		category, err := s.categoryResolver.ResolveRef(ctx, input.CategoryRef)
		if err != nil {
			return domain.Exhibit{}, err
		}
		exhibit.CategoryID = category.ID
		exhibit.Category = &category
	}
	exhibit.UpdatedAt = s.now().UTC()

	if err := s.exhibitRepository.Update(ctx, exhibit); err != nil {
		return domain.Exhibit{}, err
	}

	if input.TagsSet {
		tags, err := s.ensureTags(ctx, input.Tags)
		if err != nil {
			return domain.Exhibit{}, err
		}
		if err := s.exhibitRepository.ReplaceTags(ctx, id, tagIDs(tags)); err != nil {
			return domain.Exhibit{}, err
		}
		exhibit.Tags = tags
	}

	return exhibit, nil
}

// Delete is allowed for the owner and for administrators.
func (s *ExhibitService) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	exhibit, err := s.exhibitRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exhibit.UserID != caller.UserID && !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return s.exhibitRepository.Delete(ctx, id)
}

// ensureTags resolves tag names to records, creating the missing ones.
// Tag slugs are derived once and not probed; tag names are unique so
// their slugs collide only in pathological cases.
func (s *ExhibitService) ensureTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, found, err := s.tagRepository.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if !found {
			tag = domain.Tag{
				ID:        uuid.NewString(),
				Name:      name,
				Slug:      slug.Make(name),
				CreatedAt: s.now().UTC(),
			}
			if err := s.tagRepository.Create(ctx, tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func tagIDs(tags []domain.Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func validateEmotionScore(score *int) error {
	if score != nil && (*score < 1 || *score > 10) {
		return fmt.Errorf("%w: emotion score must be within [1,10]", domain.ErrInvalidInput)
	}
	return nil
}

func normalizeCoverImage(coverImage *string) *string {
	if coverImage == nil || strings.TrimSpace(*coverImage) == "" {
		return nil
	}
	return coverImage
}

var _ ports.ExhibitService = (*ExhibitService)(nil)
