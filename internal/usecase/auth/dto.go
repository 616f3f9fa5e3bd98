package auth

import "swifttrack-dashboard/internal/domain/record"

// LoginRequest is the credential pair typed into the login form
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,notblank,max=1024"`
}

// Result is the outcome of a login attempt. Exactly one of Identity and
// Message is set.
type Result struct {
	Identity *record.Identity `json:"user,omitempty"`
	Message  string           `json:"message,omitempty"`

	// Err is the underlying failure when the API could not be reached
	// or answered with something unusable.
	Err error `json:"-"`
}

func (r *Result) OK() bool {
	return r.Identity != nil
}
