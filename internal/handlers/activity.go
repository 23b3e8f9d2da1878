package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/cache"
	"github.com/noplanb/backend/internal/models"
	"github.com/noplanb/backend/internal/repository"
)

// recordActivity appends an admin action to the activity log and pushes it
// to connected dashboards. Logging failures never fail the write that
// triggered them.
func recordActivity(repo *repository.ActivityRepository, redis *cache.RedisClient, c *gin.Context, activityType, description string, targetID uuid.UUID) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		return
	}
	aid, ok := adminID.(uuid.UUID)
	if !ok {
		return
	}

	metadata, _ := json.Marshal(map[string]string{"target_id": targetID.String()})

	activity := models.Activity{
		ID:           uuid.New(),
		AdminID:      aid,
		ActivityType: activityType,
		Description:  description,
		Metadata:     metadata,
		CreatedAt:    time.Now(),
	}

	if err := repo.Create(&activity); err != nil {
		log.Printf("Failed to record activity %s: %v", activityType, err)
		return
	}

	if redis != nil {
		if err := redis.PublishActivity(activity); err != nil {
			log.Printf("Failed to publish activity %s: %v", activityType, err)
		}
	}
}
