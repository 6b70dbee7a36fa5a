package domain

import "time"

type Visibility string

const (
	VisibilityPrivate  Visibility = "PRIVATE"
	VisibilityShared   Visibility = "SHARED"
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityUnlisted Visibility = "UNLISTED"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic, VisibilityUnlisted:
		return true
	}
	return false
}

// ExhibitPayload is the typed extension map persisted alongside an
// exhibit. Keys are versioned here instead of accepting a free-form
// blob; new supplementary fields get a named member.
type ExhibitPayload struct {
	SpecialTags []string `json:"specialTags,omitempty"`
}

func (p ExhibitPayload) Empty() bool {
	return len(p.SpecialTags) == 0
}

// Exhibit is a journal entry. Slug is unique across all exhibits and
// derived from the title at creation; EmotionScore, when present, is
// within [1,10].
type Exhibit struct {
	ID           string
	Title        string
	Slug         string
	Description  *string
	Content      string
	CoverImage   *string
	CategoryID   string
	Visibility   Visibility
	EmotionScore *int
	ExhibitDate  *time.Time
	UserID       string
	Payload      ExhibitPayload
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category     *Category
	Author       *UserSummary
	Tags         []Tag
	CommentCount int
	Comments     []Comment
}

type CreateExhibitInput struct {
	Title        string
	Description  *string
	Content      string
	CoverImage   *string
	CategoryRef  string
	Visibility   Visibility
	EmotionScore *int
	ExhibitDate  *time.Time
	Tags         []string
	Payload      ExhibitPayload
}

// UpdateExhibitInput distinguishes "absent" from "present but empty"
// through the Set flags, so a PATCH can clear optional fields.
type UpdateExhibitInput struct {
	Title           string
	TitleSet        bool
	Description     *string
	DescriptionSet  bool
	Content         string
	ContentSet      bool
	CoverImage      *string
	CoverImageSet   bool
	CategoryRef     string
	CategorySet     bool
	Visibility      Visibility
	VisibilitySet   bool
	EmotionScore    *int
	EmotionScoreSet bool
	ExhibitDate     *time.Time
	ExhibitDateSet  bool
	Tags            []string
	TagsSet         bool
	Payload         ExhibitPayload
	PayloadSet      bool
}

type ExhibitFilter struct {
	CategoryID *string
	Visibility *Visibility
	// ShowAll bypasses visibility filtering entirely; restricted to
	// administrators.
	ShowAll bool
	// Mine scopes the listing to the caller's own exhibits regardless
	// of visibility. The service fills UserID from the caller identity;
	// transport never sets it directly.
	Mine   bool
	UserID *string
	Limit  int
	Cursor *string
}

type ExhibitPage struct {
	Items      []Exhibit
	NextCursor *string
}
