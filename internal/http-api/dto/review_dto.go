package dto

import (
	"time"

	"watchhub/internal/http-api/models"
)

// CreateReviewDTO for posting a review
type CreateReviewDTO struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateReviewDTO for editing an existing review
type UpdateReviewDTO struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"max=500"`
	Active      *bool  `json:"active"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	WatchlistID int64     `json:"watchlist_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          review.ID,
		Username:    review.ReviewUser.Username,
		Rating:      review.Rating,
		Description: review.Description,
		Active:      review.Active,
		WatchlistID: review.WatchlistID,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}
}
