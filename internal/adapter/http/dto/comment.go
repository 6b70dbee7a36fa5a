package dto

type CommentItem struct {
	ID        string        `json:"id"`
	ExhibitID string        `json:"exhibit_id"`
	Content   string        `json:"content"`
	ParentID  *string       `json:"parent_id,omitempty"`
	Author    *AuthorItem   `json:"author,omitempty"`
	Replies   []CommentItem `json:"replies,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

type CommentPage struct {
	Items      []CommentItem `json:"items"`
	NextCursor *string       `json:"next_cursor,omitempty"`
}

type CreateCommentRequest struct {
	ExhibitID string  `json:"exhibit_id" binding:"required"`
	Content   string  `json:"content" binding:"required,min=1,max=5000"`
	ParentID  *string `json:"parent_id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
