package handler

import (
	"errors"
	"net/http"
	"strconv"

	"watchhub/internal/http-api/dto"
	"watchhub/internal/http-api/middleware"
	"watchhub/internal/http-api/models"
	"watchhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	catalogService service.CatalogService
	authService    service.AuthService
}

func NewWatchlistHandler(catalogService service.CatalogService, authService service.AuthService) *WatchlistHandler {
	return &WatchlistHandler{
		catalogService: catalogService,
		authService:    authService,
	}
}

// RegisterRoutes registers the title endpoints. The list endpoint is readable
// anonymously; the detail endpoints require authentication for every method,
// which is stricter than the platform endpoints and kept that way on purpose.
func (h *WatchlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/list", middleware.AdminOrReadOnly())
	{
		list.GET("/", h.List)
		list.POST("/", h.Create)
	}

	detail := router.Group("/:id", middleware.RequireAuth(h.authService), middleware.AdminOrReadOnly())
	{
		detail.GET("/", h.Retrieve)
		detail.PUT("/", h.Update)
		detail.DELETE("/", h.Delete)
	}
}

// List returns every title.
// GET /api/watch/list/
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.catalogService.ListWatchlist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create adds a title.
// POST /api/watch/list/
func (h *WatchlistHandler) Create(c *gin.Context) {
	var req dto.WatchListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := &models.WatchList{
		Title:      req.Title,
		Storyline:  req.Storyline,
		Active:     req.IsActive(),
		PlatformID: req.PlatformID,
	}
	if err := h.catalogService.CreateWatchlistEntry(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Retrieve returns one title.
// GET /api/watch/:id/
func (h *WatchlistHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist ID"})
		return
	}

	entry, err := h.catalogService.GetWatchlistEntry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Update replaces a title's editable fields.
// PUT /api/watch/:id/
func (h *WatchlistHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist ID"})
		return
	}

	var req dto.WatchListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := &models.WatchList{
		Title:      req.Title,
		Storyline:  req.Storyline,
		Active:     req.IsActive(),
		PlatformID: req.PlatformID,
	}
	updated, err := h.catalogService.UpdateWatchlistEntry(c.Request.Context(), id, entry)
	if err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a title.
// DELETE /api/watch/:id/
func (h *WatchlistHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid watchlist ID"})
		return
	}

	if err := h.catalogService.DeleteWatchlistEntry(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
