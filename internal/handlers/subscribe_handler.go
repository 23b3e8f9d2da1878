package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/models"
	"github.com/noplanb/backend/internal/repository"
)

type SubscribeHandler struct {
	subscriberRepo *repository.SubscriberRepository
}

func NewSubscribeHandler(subscriberRepo *repository.SubscriberRepository) *SubscribeHandler {
	return &SubscribeHandler{subscriberRepo: subscriberRepo}
}

// Subscribe handles the public subscribe form. Three outcomes: created,
// already subscribed (a duplicate email is not an error), or a generic
// failure that prompts a retry.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	subscriber := &models.Subscriber{
		ID:               uuid.New(),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		MarketingConsent: req.MarketingConsent,
		PrivacyConsent:   req.PrivacyConsent,
		SubscribedAt:     now,
		CreatedAt:        now,
	}
	if req.Mobile != "" {
		subscriber.Mobile = &req.Mobile
	}

	if err := h.subscriberRepo.Create(subscriber); err != nil {
		if errors.Is(err, database.ErrConflict) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "already_subscribed",
				"message": "This email is already subscribed to our updates.",
			})
			return
		}
		ServerError(c, "Failed to create subscriber", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "subscribed",
		"message": "You've been subscribed to No Plan B Podcast updates.",
	})
}

// ListSubscribers returns all subscribers newest first (admin only)
func (h *SubscribeHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriberRepo.List()
	if err != nil {
		ServerError(c, "Failed to fetch subscribers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers, "total": len(subscribers)})
}
