package models

// Review is a single user's verdict on a program: an integer grade from 1
// to 5 and a free-form comment (1-2000 characters). A user may review a
// given program at most once; reviews are inserted or rejected, never updated.
type Review struct {
	ReviewID  int64 `json:"id"`
	AuthorID  int64 `json:"author_id"`
	ProgramID int64 `json:"program_id"`

	// AuthorName is the reviewer's username, joined in by read queries.
	AuthorName string `json:"author_name,omitempty"`

	Grade   int    `json:"grade"`
	Comment string `json:"comment"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
