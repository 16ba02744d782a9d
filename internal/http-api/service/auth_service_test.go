package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"watchhub/internal/config"
	"watchhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(refreshToken *models.RefreshToken) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret-test-secret-test-secret!",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	user, token, err := svc.Register("alice", "alice@example.com", "password123", "password124")

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	// mismatch must be caught before any lookup or write
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestRegister_EmailInUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	userRepo.On("FindByEmail", "taken@example.com").Return(&models.User{ID: "existing"}, nil)

	user, token, err := svc.Register("alice", "taken@example.com", "password123", "password123")

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrEmailInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, token, err := svc.Register("alice", "alice@example.com", "password123", "password123")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
	assert.NotEmpty(t, token)

	// the issued token authenticates as the new user
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	userRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesAccessToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	userRepo.On("FindByEmail", "bob@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", "bob").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
	tokenRepo.On("DeleteByUser", mock.AnythingOfType("string")).Return(nil)

	_, token, err := svc.Register("bob", "bob@example.com", "password123", "password123")
	require.NoError(t, err)

	ctx := context.Background()
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "a logged-out token must stop validating")
	tokenRepo.AssertCalled(t, "DeleteByUser", claims.UserID)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	tokenRepo.On("FindByToken", "stale").Return(&models.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	tokenRepo.On("Delete", "rt-1").Return(nil)

	_, err := svc.RefreshAccessToken("stale")

	assert.ErrorIs(t, err, ErrInvalidToken)
	tokenRepo.AssertCalled(t, "Delete", "rt-1")
}

func TestValidateToken_Garbage(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, NewMemoryDenylist(), testConfig())

	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
