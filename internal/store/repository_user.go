package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup and per-user aggregates
// against the "users" table.
type userRepository struct {
	db           *DB
	itemsPerPage int
	logger       *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. itemsPerPage is the page size P of [UserPrograms].
func NewUserRepository(db *DB, itemsPerPage int, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:           db,
		itemsPerPage: itemsPerPage,
		logger:       logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on username returns [ErrUserExists]
//   - any other driver-level error returns wrapped as "unexpected DB error"
//   - scan failure returns returned directly
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.User{}, ErrUserExists
		default:
			log.Err(err).
				Str("func", "userRepository.CreateUser").
				Str("username", user.Username).
				Msg("failed to insert user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	user.Password = ""

	return user, nil
}

// FindUserByUsername retrieves an account by username, including the stored
// password hash for credential verification.
//
// Error handling:
//   - no matching row returns [ErrUserNotFound]
//   - any other driver-level error returns wrapped storage fault
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "userRepository.FindUserByUsername").
			Str("username", username).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UserStats computes a user's activity aggregates with two queries: one over
// the reviews they have written (average grade given, review count) and one
// over their programs joined to reviews (average grade received with
// unreviewed programs counting as 0, distinct program count).
//
// Returns [ErrUserNotFound] when the user id has no matching row.
func (r *userRepository) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	stats := models.UserStats{UserID: userID}

	row := r.db.QueryRowContext(ctx, userReviewStats, userID)
	if err := row.Scan(&stats.Username, &stats.AverageGivenGrade, &stats.ReviewCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStats{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "userRepository.UserStats").
			Int64("user_id", userID).
			Msg("failed to scan review stats row")
		return models.UserStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	row = r.db.QueryRowContext(ctx, userProgramStats, userID)
	if err := row.Scan(&stats.AverageGrade, &stats.ProgramCount); err != nil {
		log.Err(err).
			Str("func", "userRepository.UserStats").
			Int64("user_id", userID).
			Msg("failed to scan program stats row")
		return models.UserStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

// UserPrograms returns one page of the user's programs ordered by program id
// ascending (oldest first, deliberately the opposite of the global listing).
// Pagination follows the same P+1-row pattern as the catalog listing.
//
// The query LEFT JOINs from users so a user with zero programs yields one
// row with NULL program columns; that row is filtered out and an empty slice
// returned. Zero rows at all means the user does not exist.
func (r *userRepository) UserPrograms(ctx context.Context, userID int64, page int) (models.ProgramListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserProgramsQuery(userID, page, r.itemsPerPage)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UserPrograms").
			Int64("user_id", userID).
			Msg("failed to build user programs query")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "userRepository.UserPrograms").
			Int64("user_id", userID).
			Msg("failed to execute user programs query")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	programs := make([]models.Program, 0, r.itemsPerPage+1)
	found := false

	for rows.Next() {
		var authorID int64
		var authorName string
		var programID sql.NullInt64
		var name, description sql.NullString
		var grade sql.NullFloat64

		scanErr := rows.Scan(&authorID, &authorName, &programID, &name, &description, &grade)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "userRepository.UserPrograms").
				Int64("user_id", userID).
				Msg("failed to scan user program row")
			return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		found = true

		// a user with zero programs produces a single all-NULL program row
		if !programID.Valid {
			continue
		}

		programs = append(programs, models.Program{
			ProgramID:   programID.Int64,
			AuthorID:    authorID,
			AuthorName:  authorName,
			Name:        name.String,
			Description: description.String,
			Grade:       grade.Float64,
		})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "userRepository.UserPrograms").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if !found {
		return models.ProgramListing{}, ErrUserNotFound
	}

	hasMore := false
	if len(programs) == r.itemsPerPage+1 {
		programs = programs[:r.itemsPerPage]
		hasMore = true
	}

	return models.ProgramListing{Programs: programs, HasMore: hasMore}, nil
}
