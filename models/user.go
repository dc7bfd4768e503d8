package models

import "time"

// User represents a registered account. Usernames are unique across the
// catalog; the password is stored only as a bcrypt hash and must never be
// exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public name of the account (1-25 characters).
	Username string `json:"username"`

	// Password carries the plain-text password on inbound requests only.
	// It is hashed before it ever reaches the store.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt hash. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// UserStats aggregates a user's activity across the catalog: how many
// programs they have published, the average grade those programs have
// received, and the grades they have handed out to others.
type UserStats struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	ProgramCount int64  `json:"program_count"`

	// AverageGrade is the average grade received across all of the user's
	// programs, zero when none of them has been reviewed.
	AverageGrade float64 `json:"average_grade"`

	// AverageGivenGrade is the average grade the user has given in their
	// own reviews, zero when they have written none.
	AverageGivenGrade float64 `json:"average_given_grade"`
	ReviewCount       int64   `json:"review_count"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
