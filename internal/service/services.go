package service

import (
	"github.com/velikanov/codeshelf/internal/config"
	"github.com/velikanov/codeshelf/internal/crypto"
	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
)

// Services bundles all domain services for injection into the HTTP layer.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	ReviewService  ReviewService
	ProfileService ProfileService
}

// NewServices wires the domain services to the repositories, the password
// hasher and the auth configuration.
func NewServices(repos *store.Repositories, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, hasher, cfg, logger),
		CatalogService: NewCatalogService(repos.ProgramRepository, logger),
		ReviewService:  NewReviewService(repos.ReviewRepository, logger),
		ProfileService: NewProfileService(repos.UserRepository, logger),
	}
}
