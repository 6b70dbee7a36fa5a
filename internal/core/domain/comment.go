package domain

import "time"

// Comment belongs to one exhibit and optionally one parent comment.
// Nesting is a single level: replies never have replies of their own.
type Comment struct {
	ID        string
	ExhibitID string
	Content   string
	AuthorID  string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author  *UserSummary
	Replies []Comment
}

type CreateCommentInput struct {
	ExhibitID string
	Content   string
	ParentID  *string
}

type CommentPage struct {
	Items      []Comment
	NextCursor *string
}
