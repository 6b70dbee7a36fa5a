package domain

// CallerIdentity is the authenticated caller, threaded explicitly into
// every service call instead of being read from ambient state.
type CallerIdentity struct {
	UserID  string
	IsAdmin bool
}

func (c CallerIdentity) Authenticated() bool {
	return c.UserID != ""
}

// UserSummary is the public author projection attached to exhibits and
// comments.
type UserSummary struct {
	ID    string
	Name  string
	Image *string
}
