package handler

import (
	"errors"
	"net/http"
	"strconv"

	"watchhub/internal/http-api/dto"
	"watchhub/internal/http-api/middleware"
	"watchhub/internal/http-api/models"
	"watchhub/internal/http-api/policy"
	"watchhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	authService   service.AuthService
}

func NewReviewHandler(reviewService service.ReviewService, authService service.AuthService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
	}
}

// RegisterRoutes registers the review endpoints. Listing is public; posting
// needs authentication; the detail endpoints apply owner-or-read-only after
// loading the review.
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/:id/reviews/", h.List)
	router.POST("/:id/review-create/", middleware.RequireAuth(h.authService), h.Create)

	review := router.Group("/review")
	{
		review.GET("/:id/", h.Retrieve)
		review.PUT("/:id/", h.Update)
		review.DELETE("/:id/", h.Delete)
	}
}

// Create posts the caller's single review for a title.
// POST /api/watch/:id/review-create/
func (h *ReviewHandler) Create(c *gin.Context) {
	watchlistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist ID"})
		return
	}

	actor := middleware.ActorFromContext(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), actor.UserID, watchlistID, req.Rating, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List returns every review for a title.
// GET /api/watch/:id/reviews/
func (h *ReviewHandler) List(c *gin.Context) {
	watchlistID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist ID"})
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), watchlistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Retrieve returns one review. Reads are public.
// GET /api/watch/review/:id/
func (h *ReviewHandler) Retrieve(c *gin.Context) {
	review, ok := h.loadReview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// Update edits a review, owner or staff only. The title's rating aggregate is
// not recomputed.
// PUT /api/watch/review/:id/
func (h *ReviewHandler) Update(c *gin.Context) {
	review, ok := h.loadReview(c)
	if !ok {
		return
	}
	if !h.checkOwnership(c, review.ReviewUserID) {
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := review.Active
	if req.Active != nil {
		active = *req.Active
	}

	updated, err := h.reviewService.UpdateReview(c.Request.Context(), review, req.Rating, req.Description, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a review, owner or staff only.
// DELETE /api/watch/review/:id/
func (h *ReviewHandler) Delete(c *gin.Context) {
	review, ok := h.loadReview(c)
	if !ok {
		return
	}
	if !h.checkOwnership(c, review.ReviewUserID) {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), review.ID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// loadReview parses the id parameter and fetches the review, writing the
// error response itself on failure.
func (h *ReviewHandler) loadReview(c *gin.Context) (review *models.Review, ok bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return nil, false
	}

	r, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return r, true
}

// checkOwnership applies the owner-or-read-only policy to the current request
// and writes the 401/403 response when it denies.
func (h *ReviewHandler) checkOwnership(c *gin.Context, ownerID string) bool {
	actor := middleware.ActorFromContext(c)
	if policy.OwnerOrReadOnly(c.Request.Method, actor, ownerID) {
		return true
	}
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	} else {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this review"})
	}
	return false
}
