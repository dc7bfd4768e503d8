package service

import (
	"context"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/models"
)

// profileService is the concrete implementation of [ProfileService].
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a [ProfileService] wired to the given
// repository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Stats returns the user's activity aggregates.
func (s *profileService) Stats(ctx context.Context, userID int64) (models.UserStats, error) {
	return s.userRepository.UserStats(ctx, userID)
}

// Programs returns one page of the user's programs, oldest first.
func (s *profileService) Programs(ctx context.Context, userID int64, page int) (models.ProgramListing, error) {
	if page < 0 {
		page = 0
	}

	return s.userRepository.UserPrograms(ctx, userID, page)
}
