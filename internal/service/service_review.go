package service

import (
	"context"
	"fmt"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/models"
)

// reviewService is the concrete implementation of [ReviewService]. Grade
// bounds and comment length are checked here; the one-review-per-user-per-
// program invariant stays with the store's unique constraint.
type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

// NewReviewService constructs a [ReviewService] wired to the given
// repository.
func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// ReviewProgram validates and inserts a review.
//
// Returns the stored review, a wrapped [ErrValidation] for bad input, or
// [store.ErrReviewedAlready] (wrapped) when the author has already reviewed
// the program.
func (s *reviewService) ReviewProgram(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	if err := validateReviewFields(review.Grade, review.Comment); err != nil {
		return models.Review{}, err
	}

	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		log.Err(err).
			Int64("program_id", review.ProgramID).
			Int64("author_id", review.AuthorID).
			Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return created, nil
}

// GetReviews returns every review of a program, oldest first.
func (s *reviewService) GetReviews(ctx context.Context, programID int64) ([]models.Review, error) {
	return s.reviewRepository.GetReviews(ctx, programID)
}
