package repository

import (
	"context"
	"errors"
	"fmt"

	"watchhub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	// CreateWithAggregate inserts a review and folds its rating into the
	// owning watchlist entry inside a single transaction.
	CreateWithAggregate(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetByWatchlist(ctx context.Context, watchlistID int64) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateWithAggregate locks the watchlist row, applies the rating blend,
// persists the aggregate and only then inserts the review row. The row lock
// and the composite unique index on (watchlist_id, review_user_id) close the
// read-then-write races between concurrent submissions; the aggregate write
// still precedes the review insert as it always has.
func (r *reviewRepository) CreateWithAggregate(ctx context.Context, review *models.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var watchlist models.WatchList
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&watchlist, review.WatchlistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("watchlist_id = ? AND review_user_id = ?", review.WatchlistID, review.ReviewUserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateReview
		}

		watchlist.ApplyRating(review.Rating)
		if err := tx.Save(&watchlist).Error; err != nil {
			return fmt.Errorf("update rating aggregate: %w", err)
		}

		return tx.Create(review).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("ReviewUser").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByWatchlist(ctx context.Context, watchlistID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		Preload("ReviewUser").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update saves a changed review. The watchlist aggregate is deliberately left
// alone: edits and deletions have never re-adjusted avg_rating/number_rating.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique-constraint error
// (SQLSTATE 23505), which the composite review index raises when two
// submissions for the same pair slip past the in-transaction count.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
