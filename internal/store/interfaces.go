package store

import (
	"context"

	"github.com/velikanov/codeshelf/models"
)

// ProgramRepository is the data-access contract for catalog entries, their
// taxonomy tags and aggregate grades. It performs no input validation beyond
// what the database schema enforces; field-length and link-prefix rules are
// the service layer's responsibility.
type ProgramRepository interface {
	GetProgram(ctx context.Context, programID int64) (models.Program, error)
	ListPrograms(ctx context.Context, page int) (models.ProgramListing, error)
	SearchPrograms(ctx context.Context, searchText string, page int) (models.ProgramListing, error)
	CreateProgram(ctx context.Context, program models.Program, classValueIDs []int64) (int64, error)
	UpdateProgram(ctx context.Context, program models.Program) error
	DeleteProgram(ctx context.Context, programID int64) error
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassIDs(ctx context.Context) ([]int64, error)
}

// ReviewRepository inserts and lists reviews. One review per (author,
// program) pair is enforced by the database unique constraint, surfaced as
// [ErrReviewedAlready].
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReviews(ctx context.Context, programID int64) ([]models.Review, error)
}

// UserRepository handles account rows and per-user aggregates.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
	UserPrograms(ctx context.Context, userID int64, page int) (models.ProgramListing, error)
}
