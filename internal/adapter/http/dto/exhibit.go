package dto

type ExhibitItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	Content      string          `json:"content,omitempty"`
	CoverImage   *string         `json:"cover_image,omitempty"`
	Visibility   string          `json:"visibility"`
	EmotionScore *int            `json:"emotion_score,omitempty"`
	ExhibitDate  *string         `json:"exhibit_date,omitempty"`
	SpecialTags  []string        `json:"special_tags,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
	Category     *CategoryItem   `json:"category,omitempty"`
	Author       *AuthorItem     `json:"author,omitempty"`
	Tags         []TagItem       `json:"tags,omitempty"`
	CommentCount int             `json:"comment_count"`
	Comments     []CommentItem   `json:"comments,omitempty"`
}

type ExhibitPage struct {
	Items      []ExhibitItem `json:"items"`
	NextCursor *string       `json:"next_cursor,omitempty"`
}

type AuthorItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type TagItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateExhibitRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=65535"`
	Content      string   `json:"content" binding:"required"`
	CoverImage   *string  `json:"cover_image" binding:"omitempty,max=65535"`
	CategoryID   string   `json:"category_id" binding:"required"`
	Visibility   *string  `json:"visibility" binding:"omitempty,oneof=PRIVATE SHARED PUBLIC UNLISTED"`
	EmotionScore *int     `json:"emotion_score" binding:"omitempty,gte=1,lte=10"`
	ExhibitDate  *string  `json:"exhibit_date"`
	Tags         []string `json:"tags" binding:"omitempty,dive,max=50"`
	SpecialTags  []string `json:"special_tags" binding:"omitempty,dive,max=50"`
}

type UpdateExhibitRequest struct {
	Title        *string  `json:"title" binding:"omitempty,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=65535"`
	Content      *string  `json:"content"`
	CoverImage   *string  `json:"cover_image" binding:"omitempty,max=65535"`
	CategoryID   *string  `json:"category_id"`
	Visibility   *string  `json:"visibility" binding:"omitempty,oneof=PRIVATE SHARED PUBLIC UNLISTED"`
	EmotionScore *int     `json:"emotion_score" binding:"omitempty,gte=1,lte=10"`
	ExhibitDate  *string  `json:"exhibit_date"`
	Tags         []string `json:"tags" binding:"omitempty,dive,max=50"`
	SpecialTags  []string `json:"special_tags" binding:"omitempty,dive,max=50"`
}

type CreateExhibitResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}
