package dto

type CategoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Color        *string `json:"color,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	ExhibitCount int     `json:"exhibit_count"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required,max=50"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
	Icon  *string `json:"icon" binding:"omitempty,max=16"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
	Icon  *string `json:"icon" binding:"omitempty,max=16"`
}
