package repository

import (
	"context"
	"errors"
	"fmt"

	"watchhub/internal/http-api/models"

	"gorm.io/gorm"
)

type PlatformRepository interface {
	GetAll(ctx context.Context) ([]models.StreamPlatform, error)
	GetByID(ctx context.Context, id int64) (*models.StreamPlatform, error)
	Create(ctx context.Context, p *models.StreamPlatform) error
	Update(ctx context.Context, id int64, p *models.StreamPlatform) error
	Delete(ctx context.Context, id int64) error
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) GetAll(ctx context.Context) ([]models.StreamPlatform, error) {
	var list []models.StreamPlatform
	if err := r.db.WithContext(ctx).Preload("WatchList").Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *platformRepository) GetByID(ctx context.Context, id int64) (*models.StreamPlatform, error) {
	var p models.StreamPlatform
	if err := r.db.WithContext(ctx).Preload("WatchList").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *platformRepository) Create(ctx context.Context, p *models.StreamPlatform) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create platform: %w", err)
	}
	return nil
}

func (r *platformRepository) Update(ctx context.Context, id int64, p *models.StreamPlatform) error {
	// ensure ID set for Save
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	return nil
}

// Delete removes a platform and, through the cascade constraint, the titles it
// owns together with their reviews.
func (r *platformRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("WatchList").Delete(&models.StreamPlatform{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete platform: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
