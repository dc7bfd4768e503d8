package service

import (
	"context"
	"fmt"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/models"
)

// catalogService is the concrete implementation of [CatalogService]. It
// validates all user input, enforces ownership on mutations and delegates
// persistence to the [store.ProgramRepository].
type catalogService struct {
	programRepository store.ProgramRepository
	logger            *logger.Logger
}

// NewCatalogService constructs a [CatalogService] wired to the given
// repository.
func NewCatalogService(programRepository store.ProgramRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		programRepository: programRepository,
		logger:            logger,
	}
}

// GetProgram returns a single program with author, aggregate grade and tags.
func (c *catalogService) GetProgram(ctx context.Context, programID int64) (models.Program, error) {
	return c.programRepository.GetProgram(ctx, programID)
}

// ListPrograms returns one page of the global catalog, newest first.
func (c *catalogService) ListPrograms(ctx context.Context, page int) (models.ProgramListing, error) {
	if page < 0 {
		page = 0
	}

	return c.programRepository.ListPrograms(ctx, page)
}

// SearchPrograms returns one page of programs matching searchText. Empty
// search text falls back to the plain listing; the repository itself treats
// nothing as "no search".
func (c *catalogService) SearchPrograms(ctx context.Context, searchText string, page int) (models.ProgramListing, error) {
	if page < 0 {
		page = 0
	}

	if searchText == "" {
		return c.programRepository.ListPrograms(ctx, page)
	}

	return c.programRepository.SearchPrograms(ctx, searchText, page)
}

// CreateProgram validates the program fields and the submitted class values
// and inserts the program with its tags.
//
// classValues maps class id to the chosen class-value id and must contain
// exactly one entry per known class. The values are passed to the store in
// the canonical class-id order returned by the repository, so the zip with
// submitted form values stays stable.
//
// Returns the new program id, a wrapped [ErrValidation] for bad input, or
// [store.ErrProgramExists] (wrapped) when the author already has a program
// with that name.
func (c *catalogService) CreateProgram(ctx context.Context, program models.Program, classValues map[int64]int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validateProgramFields(program.Name, program.SourceLink, program.DownloadLink, program.Description); err != nil {
		return 0, err
	}

	classIDs, err := c.programRepository.ListClassIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing class ids failed: %w", err)
	}

	if len(classValues) != len(classIDs) {
		return 0, fmt.Errorf("%w: expected exactly one value per class", ErrValidation)
	}

	classValueIDs := make([]int64, 0, len(classIDs))
	for _, classID := range classIDs {
		valueID, ok := classValues[classID]
		if !ok {
			return 0, fmt.Errorf("%w: missing value for class %d", ErrValidation, classID)
		}
		classValueIDs = append(classValueIDs, valueID)
	}

	programID, err := c.programRepository.CreateProgram(ctx, program, classValueIDs)
	if err != nil {
		log.Err(err).
			Int64("author_id", program.AuthorID).
			Str("name", program.Name).
			Msg("program creation ended with error")
		return 0, fmt.Errorf("program creation ended with error: %w", err)
	}

	return programID, nil
}

// UpdateProgram validates the new field values and checks ownership before
// updating: a requester who does not own the program gets [ErrNotOwner].
// The repository's id+author match remains as a backstop, silently updating
// nothing on a mismatch.
func (c *catalogService) UpdateProgram(ctx context.Context, program models.Program) error {
	log := logger.FromContext(ctx)

	if err := validateProgramFields(program.Name, program.SourceLink, program.DownloadLink, program.Description); err != nil {
		return err
	}

	stored, err := c.programRepository.GetProgram(ctx, program.ProgramID)
	if err != nil {
		return fmt.Errorf("program lookup failed: %w", err)
	}

	if stored.AuthorID != program.AuthorID {
		log.Warn().
			Int64("program_id", program.ProgramID).
			Int64("owner_id", stored.AuthorID).
			Int64("requester_id", program.AuthorID).
			Msg("update rejected: requester is not the owner")
		return ErrNotOwner
	}

	return c.programRepository.UpdateProgram(ctx, program)
}

// DeleteProgram checks ownership and removes the program together with its
// tag and review rows. The repository delete itself has no author filter,
// so this pre-check is the only ownership gate.
func (c *catalogService) DeleteProgram(ctx context.Context, programID, requesterID int64) error {
	log := logger.FromContext(ctx)

	stored, err := c.programRepository.GetProgram(ctx, programID)
	if err != nil {
		return fmt.Errorf("program lookup failed: %w", err)
	}

	if stored.AuthorID != requesterID {
		log.Warn().
			Int64("program_id", programID).
			Int64("owner_id", stored.AuthorID).
			Int64("requester_id", requesterID).
			Msg("delete rejected: requester is not the owner")
		return ErrNotOwner
	}

	return c.programRepository.DeleteProgram(ctx, programID)
}

// ListClasses returns the tagging taxonomy grouped by class.
func (c *catalogService) ListClasses(ctx context.Context) ([]models.Class, error) {
	return c.programRepository.ListClasses(ctx)
}
