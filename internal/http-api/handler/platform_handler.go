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

type PlatformHandler struct {
	catalogService service.CatalogService
}

func NewPlatformHandler(catalogService service.CatalogService) *PlatformHandler {
	return &PlatformHandler{catalogService: catalogService}
}

// RegisterRoutes registers the platform endpoints. Reads are public; writes
// require staff through the admin-or-read-only gate.
func (h *PlatformHandler) RegisterRoutes(router *gin.RouterGroup) {
	stream := router.Group("/stream", middleware.AdminOrReadOnly())
	{
		stream.GET("/", h.List)
		stream.POST("/", h.Create)
		stream.GET("/:id/", h.Retrieve)
		stream.PUT("/:id/", h.Update)
		stream.DELETE("/:id/", h.Delete)
	}
}

// List returns every platform with its titles.
// GET /api/watch/stream/
func (h *PlatformHandler) List(c *gin.Context) {
	platforms, err := h.catalogService.ListPlatforms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// Create adds a platform.
// POST /api/watch/stream/
func (h *PlatformHandler) Create(c *gin.Context) {
	var req dto.StreamPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform := &models.StreamPlatform{
		Name:    req.Name,
		About:   req.About,
		Website: req.Website,
	}
	if err := h.catalogService.CreatePlatform(c.Request.Context(), platform); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, platform)
}

// Retrieve returns one platform.
// GET /api/watch/stream/:id/
func (h *PlatformHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}

	platform, err := h.catalogService.GetPlatform(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platform)
}

// Update replaces a platform's fields.
// PUT /api/watch/stream/:id/
func (h *PlatformHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}

	var req dto.StreamPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform := &models.StreamPlatform{
		Name:    req.Name,
		About:   req.About,
		Website: req.Website,
	}
	updated, err := h.catalogService.UpdatePlatform(c.Request.Context(), id, platform)
	if err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a platform and cascades to its titles.
// DELETE /api/watch/stream/:id/
func (h *PlatformHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}

	if err := h.catalogService.DeletePlatform(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
