package models

import "time"

// AuthToken is the opaque bearer token that authenticates a user.
//
// The service keeps at most one live token per user: logging in again
// replaces the stored value (rotation), so the previous token immediately
// stops resolving. Tokens carry no embedded claims; every request resolves
// the string against the token store.
type AuthToken struct {
	// TokenID is the internal unique identifier of the token row.
	TokenID int64 `json:"-"`

	// Token is the opaque bearer value handed to the client after login.
	Token string `json:"auth_token"`

	// UserID is the owning user. Exactly one token row exists per user.
	UserID int64 `json:"-"`

	// CreatedAt is the instant the token was issued or last rotated.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AuthToken model.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}

// String returns the opaque token value.
// It implements the [fmt.Stringer] interface.
func (t AuthToken) String() string {
	return t.Token
}
