package service

import (
	"context"
	"errors"

	"watchhub/internal/http-api/models"
	"watchhub/internal/http-api/repository"
)

var (
	ErrPlatformNotFound = errors.New("stream platform not found")
)

// CatalogService is the CRUD pass-through over platforms and titles. There
// are no business rules here beyond not-found mapping; access control sits in
// the middleware chain.
type CatalogService interface {
	ListPlatforms(ctx context.Context) ([]models.StreamPlatform, error)
	GetPlatform(ctx context.Context, id int64) (*models.StreamPlatform, error)
	CreatePlatform(ctx context.Context, p *models.StreamPlatform) error
	UpdatePlatform(ctx context.Context, id int64, p *models.StreamPlatform) (*models.StreamPlatform, error)
	DeletePlatform(ctx context.Context, id int64) error

	ListWatchlist(ctx context.Context) ([]models.WatchList, error)
	GetWatchlistEntry(ctx context.Context, id int64) (*models.WatchList, error)
	CreateWatchlistEntry(ctx context.Context, w *models.WatchList) error
	UpdateWatchlistEntry(ctx context.Context, id int64, w *models.WatchList) (*models.WatchList, error)
	DeleteWatchlistEntry(ctx context.Context, id int64) error
}

type catalogService struct {
	platformRepo  repository.PlatformRepository
	watchlistRepo repository.WatchlistRepository
}

func NewCatalogService(platformRepo repository.PlatformRepository, watchlistRepo repository.WatchlistRepository) CatalogService {
	return &catalogService{
		platformRepo:  platformRepo,
		watchlistRepo: watchlistRepo,
	}
}

func (s *catalogService) ListPlatforms(ctx context.Context) ([]models.StreamPlatform, error) {
	return s.platformRepo.GetAll(ctx)
}

func (s *catalogService) GetPlatform(ctx context.Context, id int64) (*models.StreamPlatform, error) {
	p, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *catalogService) CreatePlatform(ctx context.Context, p *models.StreamPlatform) error {
	return s.platformRepo.Create(ctx, p)
}

func (s *catalogService) UpdatePlatform(ctx context.Context, id int64, p *models.StreamPlatform) (*models.StreamPlatform, error) {
	if _, err := s.GetPlatform(ctx, id); err != nil {
		return nil, err
	}
	if err := s.platformRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) DeletePlatform(ctx context.Context, id int64) error {
	if err := s.platformRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlatformNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) ListWatchlist(ctx context.Context) ([]models.WatchList, error) {
	return s.watchlistRepo.GetAll(ctx)
}

func (s *catalogService) GetWatchlistEntry(ctx context.Context, id int64) (*models.WatchList, error) {
	w, err := s.watchlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWatchlistNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *catalogService) CreateWatchlistEntry(ctx context.Context, w *models.WatchList) error {
	return s.watchlistRepo.Create(ctx, w)
}

// UpdateWatchlistEntry replaces a title's editable fields. The rating
// aggregate columns are carried over from the stored row so a catalog edit
// can never reset them.
func (s *catalogService) UpdateWatchlistEntry(ctx context.Context, id int64, w *models.WatchList) (*models.WatchList, error) {
	existing, err := s.GetWatchlistEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	w.AvgRating = existing.AvgRating
	w.NumberRating = existing.NumberRating
	w.CreatedAt = existing.CreatedAt
	if err := s.watchlistRepo.Update(ctx, id, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *catalogService) DeleteWatchlistEntry(ctx context.Context, id int64) error {
	if err := s.watchlistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWatchlistNotFound
		}
		return err
	}
	return nil
}
