package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/codeshelf/internal/config"
	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	userStatsFn          func(ctx context.Context, userID int64) (models.UserStats, error)
	userProgramsFn       func(ctx context.Context, userID int64, page int) (models.ProgramListing, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	if m.userStatsFn != nil {
		return m.userStatsFn(ctx, userID)
	}
	return models.UserStats{}, nil
}

func (m *mockUserRepository) UserPrograms(ctx context.Context, userID int64, page int) (models.ProgramListing, error) {
	if m.userProgramsFn != nil {
		return m.userProgramsFn(ctx, userID, page)
	}
	return models.ProgramListing{}, nil
}

// ─────────────────────────────────────────────
// Mock: crypto.PasswordHasher
// ─────────────────────────────────────────────

type mockPasswordHasher struct {
	hashFn   func(password string) (string, error)
	verifyFn func(hash, password string) bool
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hash, password string) bool {
	if m.verifyFn != nil {
		return m.verifyFn(hash, password)
	}
	return true
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

var errStorage = errors.New("storage error")

func newTestAuthService(repo *mockUserRepository, hasher *mockPasswordHasher) AuthService {
	return NewAuthService(repo, hasher, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "codeshelf",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "gopher", user.Username)
			assert.Equal(t, "hashed:secret", user.PasswordHash)
			assert.Empty(t, user.Password)

			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo, &mockPasswordHasher{})

	registered, err := svc.Register(context.Background(), "gopher", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockPasswordHasher{})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "gopher", password: ""},
		{name: "too long username", username: "aaaaaaaaaaaaaaaaaaaaaaaaaa", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_HasherError(t *testing.T) {
	hasher := &mockPasswordHasher{
		hashFn: func(_ string) (string, error) {
			return "", errors.New("bcrypt failure")
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, hasher)

	_, err := svc.Register(context.Background(), "gopher", "secret")

	assert.Error(t, err)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserExists
		},
	}
	svc := newTestAuthService(repo, &mockPasswordHasher{})

	_, err := svc.Register(context.Background(), "gopher", "secret")

	assert.ErrorIs(t, err, store.ErrUserExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "gopher", username)
			return models.User{UserID: 7, Username: "gopher", PasswordHash: "hashed:secret"}, nil
		},
	}
	hasher := &mockPasswordHasher{
		verifyFn: func(hash, password string) bool {
			return hash == "hashed:"+password
		},
	}
	svc := newTestAuthService(repo, hasher)

	foundUser, err := svc.Login(context.Background(), "gopher", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), foundUser.UserID)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockPasswordHasher{})

	_, err := svc.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo, &mockPasswordHasher{})

	_, err := svc.Login(context.Background(), "ghost", "secret")

	// unknown user and wrong password must be indistinguishable
	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 7, Username: "gopher", PasswordHash: "hashed:secret"}, nil
		},
	}
	hasher := &mockPasswordHasher{
		verifyFn: func(_, _ string) bool {
			return false
		},
	}
	svc := newTestAuthService(repo, hasher)

	_, err := svc.Login(context.Background(), "gopher", "wrong")

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo, &mockPasswordHasher{})

	_, err := svc.Login(context.Background(), "gopher", "secret")

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockPasswordHasher{})

	issued, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockPasswordHasher{})

	_, err := svc.ParseToken(context.Background(), "garbage.token.value")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
