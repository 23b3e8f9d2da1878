package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/cache"
	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
	"github.com/noplanb/backend/internal/repository"
)

// ReelHandler is the admin editor for reels
type ReelHandler struct {
	reelRepo     *repository.ReelRepository
	activityRepo *repository.ActivityRepository
	redis        *cache.RedisClient
}

func NewReelHandler(reelRepo *repository.ReelRepository, activityRepo *repository.ActivityRepository, redis *cache.RedisClient) *ReelHandler {
	return &ReelHandler{
		reelRepo:     reelRepo,
		activityRepo: activityRepo,
		redis:        redis,
	}
}

// List returns all reels for the admin table
func (h *ReelHandler) List(c *gin.Context) {
	reels, err := h.reelRepo.List(0)
	if err != nil {
		ServerError(c, "Failed to fetch reels", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reels": reels, "total": len(reels)})
}

// Create validates the submitted form and inserts a new reel
func (h *ReelHandler) Create(c *gin.Context) {
	var req models.ReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reel := &models.Reel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	req.Apply(reel)

	if err := h.reelRepo.Create(reel); err != nil {
		ServerError(c, "Failed to create reel", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityReelCreated,
		fmt.Sprintf("Created reel %s", reel.EmbedURL), reel.ID)

	c.JSON(http.StatusCreated, reel)
}

// Update validates the submitted form and rewrites the reel
func (h *ReelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid reel id")
		return
	}

	var req models.ReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reel := &models.Reel{ID: id}
	req.Apply(reel)

	if err := h.reelRepo.Update(reel); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Reel not found")
			return
		}
		ServerError(c, "Failed to update reel", err)
		return
	}

	updated, err := h.reelRepo.GetByID(id)
	if err != nil {
		ServerError(c, "Failed to reload reel", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityReelUpdated,
		fmt.Sprintf("Updated reel %s", updated.EmbedURL), updated.ID)

	c.JSON(http.StatusOK, updated)
}

// Delete removes a reel
func (h *ReelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid reel id")
		return
	}

	if err := h.reelRepo.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Reel not found")
			return
		}
		ServerError(c, "Failed to delete reel", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityReelDeleted, "Deleted reel", id)

	c.JSON(http.StatusOK, gin.H{"message": "Reel deleted"})
}

func (h *ReelHandler) invalidateCache() {
	if h.redis == nil {
		return
	}
	if err := h.redis.InvalidateList(cacheKeyReels); err != nil {
		log.Printf("Warning: failed to invalidate reel cache: %v", err)
	}
}
