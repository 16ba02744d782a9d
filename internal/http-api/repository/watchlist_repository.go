package repository

import (
	"context"
	"errors"
	"fmt"

	"watchhub/internal/http-api/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	GetAll(ctx context.Context) ([]models.WatchList, error)
	GetByID(ctx context.Context, id int64) (*models.WatchList, error)
	Create(ctx context.Context, w *models.WatchList) error
	Update(ctx context.Context, id int64, w *models.WatchList) error
	Delete(ctx context.Context, id int64) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) GetAll(ctx context.Context) ([]models.WatchList, error) {
	var list []models.WatchList
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *watchlistRepository) GetByID(ctx context.Context, id int64) (*models.WatchList, error) {
	var w models.WatchList
	if err := r.db.WithContext(ctx).Preload("Platform").First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *watchlistRepository) Create(ctx context.Context, w *models.WatchList) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	// GORM populates w.ID and w.CreatedAt
	return nil
}

func (r *watchlistRepository) Update(ctx context.Context, id int64, w *models.WatchList) error {
	w.ID = id
	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return fmt.Errorf("update watchlist entry: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.WatchList{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete watchlist entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
