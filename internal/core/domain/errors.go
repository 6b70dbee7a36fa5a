package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrExhibitNotFound  = errors.New("exhibit not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")

	// ErrForbidden covers authenticated callers acting on entities they
	// do not own (or admin-only operations).
	ErrForbidden = errors.New("forbidden")

	// ErrExhibitPrivate is the domain error for reading a PRIVATE
	// exhibit; it is distinct from not-found so the caller can render a
	// dedicated message without leaking content.
	ErrExhibitPrivate = errors.New("exhibit is private")

	// ErrCategoryInUse refuses deleting a category still referenced by
	// at least one exhibit.
	ErrCategoryInUse = errors.New("category still has exhibits")

	// ErrCategoryNameTaken refuses a second category with the same name;
	// names are unique alongside slugs.
	ErrCategoryNameTaken = errors.New("category name already taken")

	// ErrSlugConflict surfaces when the unique constraint rejects an
	// insert that lost the check-then-insert race.
	ErrSlugConflict = errors.New("slug already taken")

	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidInput is the service-level validation failure for
	// malformed values that survive transport binding.
	ErrInvalidInput = errors.New("invalid input")
)
