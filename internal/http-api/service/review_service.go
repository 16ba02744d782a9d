package service

import (
	"context"
	"errors"

	"watchhub/internal/http-api/dto"
	"watchhub/internal/http-api/models"
	"watchhub/internal/http-api/repository"
)

var (
	ErrWatchlistNotFound = errors.New("watchlist entry not found")
	ErrReviewNotFound    = errors.New("review not found")
	ErrAlreadyReviewed   = errors.New("you have already reviewed this watchlist entry")
)

// ReviewService carries the review business rules: one review per user per
// title, and the incremental rating aggregate on the title.
type ReviewService interface {
	CreateReview(ctx context.Context, userID string, watchlistID int64, rating int, description string) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, watchlistID int64) ([]dto.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID int64) (*models.Review, error)
	UpdateReview(ctx context.Context, review *models.Review, rating int, description string, active bool) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// CreateReview posts a user's single review for a title. The repository runs
// the aggregate update and the insert in one transaction; here we only map
// its outcomes. A duplicate submission is a conflict, not a silent update.
func (s *reviewService) CreateReview(ctx context.Context, userID string, watchlistID int64, rating int, description string) (*dto.ReviewResponse, error) {
	review := &models.Review{
		Rating:       rating,
		Description:  description,
		Active:       true,
		ReviewUserID: userID,
		WatchlistID:  watchlistID,
	}

	if err := s.reviewRepo.CreateWithAggregate(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrWatchlistNotFound
		case errors.Is(err, repository.ErrDuplicateReview):
			return nil, ErrAlreadyReviewed
		default:
			return nil, err
		}
	}

	// reload so the response carries the reviewer's username
	created, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(created), nil
}

// ListReviews returns every review for a title. Reads are public, and an
// unknown title simply matches nothing, so the result is an empty list
// rather than an error.
func (s *reviewService) ListReviews(ctx context.Context, watchlistID int64) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.GetByWatchlist(ctx, watchlistID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

// UpdateReview changes an existing review's content. The title's aggregate is
// left untouched, matching the long-standing behavior.
func (s *reviewService) UpdateReview(ctx context.Context, review *models.Review, rating int, description string, active bool) (*dto.ReviewResponse, error) {
	review.Rating = rating
	review.Description = description
	review.Active = active

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

// DeleteReview removes a review without re-adjusting the title's aggregate.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
