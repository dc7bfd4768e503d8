package service

import (
	"context"

	"github.com/velikanov/codeshelf/models"
)

// AuthService handles account registration, credential verification and
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService exposes the program catalog: reads, paginated listings and
// search, plus creation, update and deletion with ownership checks. All
// field validation happens here, before anything reaches the store.
type CatalogService interface {
	GetProgram(ctx context.Context, programID int64) (models.Program, error)
	ListPrograms(ctx context.Context, page int) (models.ProgramListing, error)
	SearchPrograms(ctx context.Context, searchText string, page int) (models.ProgramListing, error)
	CreateProgram(ctx context.Context, program models.Program, classValues map[int64]int64) (int64, error)
	UpdateProgram(ctx context.Context, program models.Program) error
	DeleteProgram(ctx context.Context, programID, requesterID int64) error
	ListClasses(ctx context.Context) ([]models.Class, error)
}

// ReviewService validates and records reviews and lists them per program.
type ReviewService interface {
	ReviewProgram(ctx context.Context, review models.Review) (models.Review, error)
	GetReviews(ctx context.Context, programID int64) ([]models.Review, error)
}

// ProfileService exposes per-user statistics and the user's own paginated
// program listing.
type ProfileService interface {
	Stats(ctx context.Context, userID int64) (models.UserStats, error)
	Programs(ctx context.Context, userID int64, page int) (models.ProgramListing, error)
}
