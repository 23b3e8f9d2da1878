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

// SponsorHandler is the admin editor for sponsors
type SponsorHandler struct {
	sponsorRepo  *repository.SponsorRepository
	activityRepo *repository.ActivityRepository
	redis        *cache.RedisClient
}

func NewSponsorHandler(sponsorRepo *repository.SponsorRepository, activityRepo *repository.ActivityRepository, redis *cache.RedisClient) *SponsorHandler {
	return &SponsorHandler{
		sponsorRepo:  sponsorRepo,
		activityRepo: activityRepo,
		redis:        redis,
	}
}

// List returns all sponsors for the admin table
func (h *SponsorHandler) List(c *gin.Context) {
	sponsors, err := h.sponsorRepo.List(0, false)
	if err != nil {
		ServerError(c, "Failed to fetch sponsors", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors, "total": len(sponsors)})
}

// Create validates the submitted form and inserts a new sponsor
func (h *SponsorHandler) Create(c *gin.Context) {
	var req models.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sponsor := &models.Sponsor{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	req.Apply(sponsor)

	if err := h.sponsorRepo.Create(sponsor); err != nil {
		ServerError(c, "Failed to create sponsor", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivitySponsorCreated,
		fmt.Sprintf("Created sponsor %q", sponsor.Name), sponsor.ID)

	c.JSON(http.StatusCreated, sponsor)
}

// Update validates the submitted form and rewrites the sponsor
func (h *SponsorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid sponsor id")
		return
	}

	var req models.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sponsor := &models.Sponsor{ID: id}
	req.Apply(sponsor)

	if err := h.sponsorRepo.Update(sponsor); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Sponsor not found")
			return
		}
		ServerError(c, "Failed to update sponsor", err)
		return
	}

	updated, err := h.sponsorRepo.GetByID(id)
	if err != nil {
		ServerError(c, "Failed to reload sponsor", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivitySponsorUpdated,
		fmt.Sprintf("Updated sponsor %q", updated.Name), updated.ID)

	c.JSON(http.StatusOK, updated)
}

// Delete removes a sponsor
func (h *SponsorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid sponsor id")
		return
	}

	if err := h.sponsorRepo.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Sponsor not found")
			return
		}
		ServerError(c, "Failed to delete sponsor", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivitySponsorDeleted, "Deleted sponsor", id)

	c.JSON(http.StatusOK, gin.H{"message": "Sponsor deleted"})
}

func (h *SponsorHandler) invalidateCache() {
	if h.redis == nil {
		return
	}
	if err := h.redis.InvalidateList(cacheKeySponsors); err != nil {
		log.Printf("Warning: failed to invalidate sponsor cache: %v", err)
	}
}
