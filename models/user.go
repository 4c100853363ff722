package models

import (
	"strings"
	"time"
)

// Role is the closed set of access levels a user account can hold.
// It is stored as a plain string in the database but application code must
// only ever compare against the three constants below.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// CanManageFrames reports whether the role is allowed to upload and delete
// frame batches. Reads are open to every authenticated role.
func (r Role) CanManageFrames() bool {
	switch r {
	case RoleAdmin, RoleModerator:
		return true
	case RoleUser:
		return false
	}
	return false
}

// RoleForEmail derives the role assigned to a freshly registered account from
// its email prefix: "admin…" becomes an admin, "moder…" a moderator and
// everything else a regular user.
func RoleForEmail(email string) Role {
	switch {
	case strings.HasPrefix(email, "admin"):
		return RoleAdmin
	case strings.HasPrefix(email, "moder"):
		return RoleModerator
	default:
		return RoleUser
	}
}

// User represents an account entity used for authentication and authorization.
// Accounts are immutable after registration except for token rotation, which
// lives in [AuthToken].
type User struct {
	// UserID is the internal unique identifier of the user.
	// Not exposed via JSON; used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Role is the account's access level. Assigned at registration from the
	// email prefix and never mutated by this service.
	Role Role `json:"-"`

	// Password carries the plain-text password on inbound register/login
	// requests only. The persistence layer never sees this field populated;
	// it is replaced by PasswordHash before any repository call.
	Password string `json:"password,omitempty"`

	// PasswordHash is the opaque one-way digest of the password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// FirstName, LastName and Nickname are optional profile fields.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Nickname  string `json:"nickname,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
