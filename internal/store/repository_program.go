package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/models"
)

// programRepository is the PostgreSQL-backed implementation of
// [ProgramRepository]. It owns catalog entries, their taxonomy tags and the
// aggregate grade computation.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type programRepository struct {
	db           *DB
	itemsPerPage int
	logger       *logger.Logger
}

// NewProgramRepository constructs a [ProgramRepository] backed by the
// provided database connection. itemsPerPage is the page size P used by all
// paginated listings.
func NewProgramRepository(db *DB, itemsPerPage int, logger *logger.Logger) ProgramRepository {
	logger.Debug().Msg("creating program repository")
	return &programRepository{
		db:           db,
		itemsPerPage: itemsPerPage,
		logger:       logger,
	}
}

// GetProgram returns a single catalog entry with its author's username, the
// average review grade (exactly 0 when the program has no reviews) and the
// ordered (class name, value) tag pairs.
//
// Error handling:
//   - no matching row returns [ErrProgramNotFound]
//   - any other driver-level error returns wrapped storage fault
func (r *programRepository) GetProgram(ctx context.Context, programID int64) (models.Program, error) {
	log := logger.FromContext(ctx)

	var program models.Program
	row := r.db.QueryRowContext(ctx, getProgram, programID)

	err := row.Scan(
		&program.ProgramID,
		&program.Name,
		&program.AuthorID,
		&program.AuthorName,
		&program.SourceLink,
		&program.DownloadLink,
		&program.Description,
		&program.CreatedAt,
		&program.Grade,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Program{}, ErrProgramNotFound
		}

		log.Err(err).
			Str("func", "programRepository.GetProgram").
			Int64("program_id", programID).
			Msg("failed to scan program row")
		return models.Program{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tags, err := r.programTags(ctx, programID)
	if err != nil {
		return models.Program{}, err
	}
	program.Classes = tags

	return program, nil
}

// programTags fetches the (class name, value) pairs of a program ordered by
// class name then value.
func (r *programRepository) programTags(ctx context.Context, programID int64) ([]models.ClassTag, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getProgramTags, programID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "programRepository.programTags").
			Int64("program_id", programID).
			Msg("failed to execute query for program tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	tags := make([]models.ClassTag, 0, 4)

	for rows.Next() {
		var tag models.ClassTag

		if scanErr := rows.Scan(&tag.ClassName, &tag.Value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "programRepository.programTags").
				Int64("program_id", programID).
				Msg("failed to scan program tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "programRepository.programTags").
			Int64("program_id", programID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

// ListPrograms returns one page of the global catalog listing ordered by
// program id descending (newest first).
//
// The query fetches itemsPerPage+1 rows so that a next page can be detected
// without a separate count query; the extra row is trimmed before returning
// and HasMore is true iff it was present.
func (r *programRepository) ListPrograms(ctx context.Context, page int) (models.ProgramListing, error) {
	return r.listing(ctx, "", page)
}

// SearchPrograms returns one page of programs whose name or description
// contains searchText, case-insensitively. Pagination works exactly like
// [ListPrograms]. Treating empty search text as "no search" is the caller's
// job, not this method's.
func (r *programRepository) SearchPrograms(ctx context.Context, searchText string, page int) (models.ProgramListing, error) {
	return r.listing(ctx, searchText, page)
}

func (r *programRepository) listing(ctx context.Context, searchText string, page int) (models.ProgramListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProgramListingQuery(searchText, page, r.itemsPerPage)
	if err != nil {
		log.Err(err).
			Str("func", "programRepository.listing").
			Int("page", page).
			Msg("failed to build listing query")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "programRepository.listing").
			Int("page", page).
			Msg("failed to execute listing query")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	programs := make([]models.Program, 0, r.itemsPerPage+1)

	for rows.Next() {
		var program models.Program

		scanErr := rows.Scan(
			&program.ProgramID,
			&program.Name,
			&program.Description,
			&program.AuthorID,
			&program.AuthorName,
			&program.Grade,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "programRepository.listing").
				Int("page", page).
				Msg("failed to scan program row")
			return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		programs = append(programs, program)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "programRepository.listing").
			Int("page", page).
			Msg("error occurred during rows iteration")
		return models.ProgramListing{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	hasMore := false
	if len(programs) == r.itemsPerPage+1 {
		programs = programs[:r.itemsPerPage]
		hasMore = true
	}

	return models.ProgramListing{Programs: programs, HasMore: hasMore}, nil
}

// CreateProgram inserts the program row and one program_class_values row per
// supplied class value inside a single transaction, so a failed tag insert
// never leaves a half-tagged program behind.
//
// classValueIDs must already be resolved and complete (one value per known
// class); the service layer validates that before calling.
//
// Error handling:
//   - unique violation on (author, name) returns [ErrProgramExists]
//   - any other driver-level error returns wrapped storage fault
func (r *programRepository) CreateProgram(ctx context.Context, program models.Program, classValueIDs []int64) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "programRepository.CreateProgram").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var programID int64
	var createdAt sql.NullTime

	row := tx.QueryRowContext(ctx, createProgram,
		program.AuthorID, program.Name, program.SourceLink, program.DownloadLink, program.Description)
	if err := row.Scan(&programID, &createdAt); err != nil {
		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return 0, ErrProgramExists
		default:
			log.Err(err).
				Str("func", "programRepository.CreateProgram").
				Int64("author_id", program.AuthorID).
				Msg("failed to insert program")
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	for _, valueID := range classValueIDs {
		if _, err := tx.ExecContext(ctx, createProgramTag, programID, valueID); err != nil {
			log.Err(err).
				Str("func", "programRepository.CreateProgram").
				Int64("program_id", programID).
				Int64("value_id", valueID).
				Msg("failed to insert program tag")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "programRepository.CreateProgram").
			Int64("program_id", programID).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "programRepository.CreateProgram").
		Int64("program_id", programID).
		Int64("author_id", program.AuthorID).
		Msg("program created")

	return programID, nil
}

// UpdateProgram updates the mutable fields of a program, matching on both id
// and author. A mismatched author affects zero rows and is a silent no-op by
// design, not an error: callers that need a user-visible "forbidden" must
// verify ownership before calling.
func (r *programRepository) UpdateProgram(ctx context.Context, program models.Program) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateProgram,
		program.Name, program.SourceLink, program.DownloadLink, program.Description,
		program.ProgramID, program.AuthorID)
	if err != nil {
		log.Err(err).
			Str("func", "programRepository.UpdateProgram").
			Int64("program_id", program.ProgramID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, rowsErr := result.RowsAffected(); rowsErr == nil && affected == 0 {
		log.Debug().
			Str("func", "programRepository.UpdateProgram").
			Int64("program_id", program.ProgramID).
			Int64("author_id", program.AuthorID).
			Msg("update matched no rows")
	}

	return nil
}

// DeleteProgram removes a program together with its tag and review rows in a
// single transaction. There is no author filter here; ownership is the
// service layer's pre-check.
func (r *programRepository) DeleteProgram(ctx context.Context, programID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "programRepository.DeleteProgram").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, statement := range []string{deleteProgramTags, deleteProgramReviews, deleteProgram} {
		if _, err := tx.ExecContext(ctx, statement, programID); err != nil {
			log.Err(err).
				Str("func", "programRepository.DeleteProgram").
				Int64("program_id", programID).
				Msg("failed to execute delete")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "programRepository.DeleteProgram").
			Int64("program_id", programID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "programRepository.DeleteProgram").
		Int64("program_id", programID).
		Msg("program deleted")

	return nil
}

// ListClasses returns the taxonomy grouped by class, classes ordered by name
// and options ordered by value.
func (r *programRepository) ListClasses(ctx context.Context) ([]models.Class, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, listClasses)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "programRepository.ListClasses").
			Msg("failed to execute classes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	classes := make([]models.Class, 0, 4)

	for rows.Next() {
		var classID int64
		var className string
		var option models.ClassOption

		if scanErr := rows.Scan(&classID, &className, &option.OptionID, &option.Value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "programRepository.ListClasses").
				Msg("failed to scan class row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		// rows arrive ordered by class name, so a new class id starts a group
		if len(classes) == 0 || classes[len(classes)-1].ClassID != classID {
			classes = append(classes, models.Class{ClassID: classID, Name: className})
		}
		last := len(classes) - 1
		classes[last].Options = append(classes[last].Options, option)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "programRepository.ListClasses").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return classes, nil
}

// ListClassIDs returns the canonical ordering of class ids (by class name,
// matching [ListClasses]) used to zip submitted per-class values at program
// creation time.
func (r *programRepository) ListClassIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, listClassIDs)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "programRepository.ListClassIDs").
			Msg("failed to execute class ids query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	ids := make([]int64, 0, 4)

	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).
				Str("func", "programRepository.ListClassIDs").
				Msg("failed to scan class id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "programRepository.ListClassIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}
