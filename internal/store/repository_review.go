package store

import (
	"context"
	"fmt"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. Reviews are insert-only; the one-review-per-user-per-
// program invariant is the database's UNIQUE (author, program) constraint,
// detected after the optimistic insert rather than checked beforehand.
type reviewRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview inserts a review row and returns it with the server-assigned
// id. Grade bounds and comment length are validated by the caller, not here.
//
// Error handling:
//   - unique violation on (author, program) returns [ErrReviewedAlready]
//   - any other driver-level error returns wrapped storage fault
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReview,
		review.AuthorID, review.ProgramID, review.Grade, review.Comment)

	if err := row.Scan(&review.ReviewID); err != nil {
		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.Review{}, ErrReviewedAlready
		default:
			log.Err(err).
				Str("func", "reviewRepository.CreateReview").
				Int64("program_id", review.ProgramID).
				Int64("author_id", review.AuthorID).
				Msg("failed to insert review")
			return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	log.Info().
		Str("func", "reviewRepository.CreateReview").
		Int64("review_id", review.ReviewID).
		Int64("program_id", review.ProgramID).
		Msg("review created")

	return review, nil
}

// GetReviews returns every review of a program joined with the reviewer's
// identity, ordered by review id ascending so the order is deterministic
// rather than whatever the storage engine happens to produce.
func (r *reviewRepository) GetReviews(ctx context.Context, programID int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getReviews, programID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "reviewRepository.GetReviews").
			Int64("program_id", programID).
			Msg("failed to execute reviews query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 10)

	for rows.Next() {
		review := models.Review{ProgramID: programID}

		scanErr := rows.Scan(
			&review.ReviewID,
			&review.Grade,
			&review.Comment,
			&review.AuthorID,
			&review.AuthorName,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reviewRepository.GetReviews").
				Int64("program_id", programID).
				Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		reviews = append(reviews, review)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reviewRepository.GetReviews").
			Int64("program_id", programID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reviews, nil
}
