package store

import (
	"github.com/velikanov/codeshelf/internal/config"
	"github.com/velikanov/codeshelf/internal/logger"
)

// Repositories bundles all data-access implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	ProgramRepository ProgramRepository
	ReviewRepository  ReviewRepository
	UserRepository    UserRepository
}

// NewRepositories wires every repository to the shared database handle.
// cfg supplies the catalog page size used by the paginated listings.
func NewRepositories(db *DB, cfg config.Catalog, logger *logger.Logger) *Repositories {
	return &Repositories{
		ProgramRepository: NewProgramRepository(db, cfg.ItemsPerPage, logger),
		ReviewRepository:  NewReviewRepository(db, logger),
		UserRepository:    NewUserRepository(db, cfg.ItemsPerPage, logger),
	}
}
