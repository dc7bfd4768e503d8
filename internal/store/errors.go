package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known,
// recoverable domain conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUserExists is returned when registering a user fails because the
	// username is already taken.
	ErrUserExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProgramNotFound is returned when the requested program does not
	// exist in the catalog.
	ErrProgramNotFound = errors.New("program was not found")

	// ErrProgramExists is returned when creating a program fails because the
	// author already has a program with the same name.
	ErrProgramExists = errors.New("program already exists")

	// ErrReviewedAlready is returned when inserting a review fails because
	// the author has already reviewed that program. The (author, program)
	// uniqueness is enforced by the database, not by a pre-check, so there
	// is no race window between checking and inserting.
	ErrReviewedAlready = errors.New("program was reviewed already")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. They always indicate a genuine storage fault, never an
// expected domain outcome.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
