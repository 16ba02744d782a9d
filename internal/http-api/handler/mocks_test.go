package handler

import (
	"context"

	"watchhub/internal/http-api/dto"
	"watchhub/internal/http-api/models"
	"watchhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, email, password, passwordConfirm string) (*models.User, string, error) {
	args := m.Called(username, email, password, passwordConfirm)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *service.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, userID string, watchlistID int64, rating int, description string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, userID, watchlistID, rating, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, watchlistID int64) ([]dto.ReviewResponse, error) {
	args := m.Called(ctx, watchlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, review *models.Review, rating int, description string, active bool) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, review, rating, description, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// MockCatalogService mocks the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPlatforms(ctx context.Context) ([]models.StreamPlatform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StreamPlatform), args.Error(1)
}

func (m *MockCatalogService) GetPlatform(ctx context.Context, id int64) (*models.StreamPlatform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StreamPlatform), args.Error(1)
}

func (m *MockCatalogService) CreatePlatform(ctx context.Context, p *models.StreamPlatform) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogService) UpdatePlatform(ctx context.Context, id int64, p *models.StreamPlatform) (*models.StreamPlatform, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StreamPlatform), args.Error(1)
}

func (m *MockCatalogService) DeletePlatform(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListWatchlist(ctx context.Context) ([]models.WatchList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchList), args.Error(1)
}

func (m *MockCatalogService) GetWatchlistEntry(ctx context.Context, id int64) (*models.WatchList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchList), args.Error(1)
}

func (m *MockCatalogService) CreateWatchlistEntry(ctx context.Context, w *models.WatchList) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockCatalogService) UpdateWatchlistEntry(ctx context.Context, id int64, w *models.WatchList) (*models.WatchList, error) {
	args := m.Called(ctx, id, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchList), args.Error(1)
}

func (m *MockCatalogService) DeleteWatchlistEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// stubClaims wires a MockAuthService to accept a bearer token for the given
// principal, so middleware-gated routes can be exercised.
func stubClaims(authService *MockAuthService, token, userID, username, role string) *service.Claims {
	claims := &service.Claims{
		JTI:      "jti-" + token,
		UserID:   userID,
		Username: username,
		Role:     role,
	}
	authService.On("ValidateToken", mock.Anything, token).Return(claims, nil)
	return claims
}
