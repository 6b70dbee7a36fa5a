package service

import (
	"context"
	"fmt"

	"github.com/go-to-sky/onelife/internal/core/domain"
	"github.com/go-to-sky/onelife/pkg/slug"
)

// uniqueSlug derives a slug from name and probes exists with it, then
// with -1, -2, ... suffixes until a free one is found. The probe is
// advisory only; the unique constraint on the slug column is the
// backstop under concurrent creation and surfaces as a conflict.
// A name with no sluggable characters would make the record
// unaddressable, so it is rejected here.
func uniqueSlug(ctx context.Context, name string, exists func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", fmt.Errorf("%w: name must contain letters or digits", domain.ErrInvalidInput)
	}
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
