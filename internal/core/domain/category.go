package domain

import "time"

// Category is a named grouping for exhibits with a display color and
// icon. Name and slug are unique; a category that still has exhibits
// cannot be deleted.
type Category struct {
	ID        string
	Name      string
	Slug      string
	Color     *string
	Icon      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	ExhibitCount int
}

type CreateCategoryInput struct {
	Name  string
	Color *string
	Icon  *string
}

type UpdateCategoryInput struct {
	Name     string
	NameSet  bool
	Color    *string
	ColorSet bool
	Icon     *string
	IconSet  bool
}

// Tag is a free label linked many-to-many with exhibits.
type Tag struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}
