package models

import "time"

// Program is a catalog entry: a piece of software published by a user,
// tagged with exactly one value per taxonomy class and graded by reviews
// from other users.
type Program struct {
	// ProgramID is the internal unique identifier, assigned by the database.
	ProgramID int64 `json:"id"`

	// AuthorID is the owning user's identifier. Only the author may update
	// or delete the program.
	AuthorID int64 `json:"author_id"`

	// AuthorName is the owning user's username, joined in by read queries.
	AuthorName string `json:"author_name,omitempty"`

	// Name is the program's display name (1-50 characters), unique per author.
	Name string `json:"name"`

	// SourceLink and DownloadLink must start with http:// or https://
	// and be at most 240 characters.
	SourceLink   string `json:"source_link,omitempty"`
	DownloadLink string `json:"download_link,omitempty"`

	// Description is free-form text, at most 5000 characters.
	Description string `json:"description"`

	// Grade is the average of all review grades, exactly 0 when the program
	// has no reviews. Computed by the store, never persisted.
	Grade float64 `json:"grade"`

	// Classes holds the (class name, value) tag pairs in class-name order.
	// Populated only by single-program reads.
	Classes []ClassTag `json:"classes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ProgramListing is one page of programs plus a flag telling whether the
// next page would be non-empty.
type ProgramListing struct {
	Programs []Program `json:"programs"`
	HasMore  bool      `json:"has_more"`
}

// TableName returns the name of the database table
// associated with the Program model.
func (p Program) TableName() string {
	return "programs"
}
