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

// EpisodeHandler is the admin editor for episodes
type EpisodeHandler struct {
	episodeRepo  *repository.EpisodeRepository
	activityRepo *repository.ActivityRepository
	redis        *cache.RedisClient
}

func NewEpisodeHandler(episodeRepo *repository.EpisodeRepository, activityRepo *repository.ActivityRepository, redis *cache.RedisClient) *EpisodeHandler {
	return &EpisodeHandler{
		episodeRepo:  episodeRepo,
		activityRepo: activityRepo,
		redis:        redis,
	}
}

// List returns all episodes for the admin table
func (h *EpisodeHandler) List(c *gin.Context) {
	episodes, err := h.episodeRepo.List(0, false)
	if err != nil {
		ServerError(c, "Failed to fetch episodes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"episodes": episodes, "total": len(episodes)})
}

// Create validates the submitted form and inserts a new episode
func (h *EpisodeHandler) Create(c *gin.Context) {
	var req models.EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	episode := &models.Episode{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	req.Apply(episode)

	if err := h.episodeRepo.Create(episode); err != nil {
		ServerError(c, "Failed to create episode", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityEpisodeCreated,
		fmt.Sprintf("Created episode %q", episode.Title), episode.ID)

	c.JSON(http.StatusCreated, episode)
}

// Update validates the submitted form and rewrites the episode
func (h *EpisodeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid episode id")
		return
	}

	var req models.EpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	episode := &models.Episode{ID: id}
	req.Apply(episode)

	if err := h.episodeRepo.Update(episode); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Episode not found")
			return
		}
		ServerError(c, "Failed to update episode", err)
		return
	}

	updated, err := h.episodeRepo.GetByID(id)
	if err != nil {
		ServerError(c, "Failed to reload episode", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityEpisodeUpdated,
		fmt.Sprintf("Updated episode %q", updated.Title), updated.ID)

	c.JSON(http.StatusOK, updated)
}

// Delete removes an episode. Deleting an id that does not exist is a
// 404, never a silent success.
func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid episode id")
		return
	}

	if err := h.episodeRepo.Delete(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Episode not found")
			return
		}
		ServerError(c, "Failed to delete episode", err)
		return
	}

	h.invalidateCache()
	recordActivity(h.activityRepo, h.redis, c, models.ActivityEpisodeDeleted, "Deleted episode", id)

	c.JSON(http.StatusOK, gin.H{"message": "Episode deleted"})
}

func (h *EpisodeHandler) invalidateCache() {
	if h.redis == nil {
		return
	}
	if err := h.redis.InvalidateList(cacheKeyEpisodes); err != nil {
		// Stale entries age out via TTL
		log.Printf("Warning: failed to invalidate episode cache: %v", err)
	}
}
