package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			logger:             l,
			errorClassificator: NewPostgresErrorClassifier(),
		},
		itemsPerPage: 2,
		logger:       l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "gopher",
		Password:     "plain",
		PasswordHash: "hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(1, user.Username, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.Password != "" {
		t.Error("plain-text password must be cleared after creation")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "gopher"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "gopher"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(7, "gopher", "hash", now)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at").
		WithArgs("gopher").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "gopher")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.PasswordHash != "hash" {
		t.Errorf("expected password hash to be populated, got %q", found.PasswordHash)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, username, password_hash, created_at").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStats_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	reviewRows := sqlmock.
		NewRows([]string{"username", "avg_given", "review_count"}).
		AddRow("gopher", 3.5, 4)
	mock.ExpectQuery("LEFT JOIN reviews r ON r.author = u.id").
		WithArgs(int64(7)).
		WillReturnRows(reviewRows)

	programRows := sqlmock.
		NewRows([]string{"avg_received", "program_count"}).
		AddRow(4.25, 2)
	mock.ExpectQuery("LEFT JOIN programs p ON p.author = u.id").
		WithArgs(int64(7)).
		WillReturnRows(programRows)

	stats, err := repo.UserStats(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Username != "gopher" {
		t.Errorf("expected username gopher, got %s", stats.Username)
	}
	if stats.AverageGivenGrade != 3.5 || stats.ReviewCount != 4 {
		t.Errorf("unexpected review stats: %+v", stats)
	}
	if stats.AverageGrade != 4.25 || stats.ProgramCount != 2 {
		t.Errorf("unexpected program stats: %+v", stats)
	}
}

func TestUserStats_UserNotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("LEFT JOIN reviews r ON r.author = u.id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UserStats(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPrograms_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"u_id", "username", "p_id", "name", "description", "grade"}).
		AddRow(7, "gopher", 1, "first", "desc", 4.0).
		AddRow(7, "gopher", 2, "second", "desc", 0.0)

	mock.ExpectQuery("FROM users u LEFT JOIN programs p").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	listing, err := repo.UserPrograms(ctx, 7, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listing.Programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(listing.Programs))
	}
	if listing.HasMore {
		t.Error("expected HasMore=false for a final page")
	}
	if listing.Programs[0].ProgramID != 1 || listing.Programs[0].AuthorName != "gopher" {
		t.Errorf("unexpected first program: %+v", listing.Programs[0])
	}
}

func TestUserPrograms_ExtraRowSetsHasMore(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// itemsPerPage is 2, so three returned rows mean another page exists
	rows := sqlmock.
		NewRows([]string{"u_id", "username", "p_id", "name", "description", "grade"}).
		AddRow(7, "gopher", 1, "first", "", 0.0).
		AddRow(7, "gopher", 2, "second", "", 0.0).
		AddRow(7, "gopher", 3, "third", "", 0.0)

	mock.ExpectQuery("FROM users u LEFT JOIN programs p").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	listing, err := repo.UserPrograms(ctx, 7, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listing.Programs) != 2 {
		t.Fatalf("expected trimmed page of 2 programs, got %d", len(listing.Programs))
	}
	if !listing.HasMore {
		t.Error("expected HasMore=true when an extra row was fetched")
	}
}

func TestUserPrograms_UserWithoutPrograms(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the LEFT JOIN produces one row with NULL program columns
	rows := sqlmock.
		NewRows([]string{"u_id", "username", "p_id", "name", "description", "grade"}).
		AddRow(7, "gopher", nil, nil, nil, nil)

	mock.ExpectQuery("FROM users u LEFT JOIN programs p").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	listing, err := repo.UserPrograms(ctx, 7, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listing.Programs) != 0 {
		t.Errorf("expected empty page, got %d programs", len(listing.Programs))
	}
	if listing.HasMore {
		t.Error("expected HasMore=false")
	}
}

func TestUserPrograms_UnknownUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"u_id", "username", "p_id", "name", "description", "grade"})

	mock.ExpectQuery("FROM users u LEFT JOIN programs p").
		WithArgs(int64(404)).
		WillReturnRows(rows)

	_, err := repo.UserPrograms(ctx, 404, 0)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
