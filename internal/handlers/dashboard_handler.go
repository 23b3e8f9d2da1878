package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noplanb/backend/internal/analytics"
	"github.com/noplanb/backend/internal/repository"
)

// recentWindow is how far back the dashboard's "recent" counts look.
const recentWindow = 30 * 24 * time.Hour

// DashboardHandler serves the admin overview, analytics and activity log
type DashboardHandler struct {
	episodeRepo    *repository.EpisodeRepository
	reelRepo       *repository.ReelRepository
	sponsorRepo    *repository.SponsorRepository
	subscriberRepo *repository.SubscriberRepository
	activityRepo   *repository.ActivityRepository
	provider       analytics.Provider
}

func NewDashboardHandler(
	episodeRepo *repository.EpisodeRepository,
	reelRepo *repository.ReelRepository,
	sponsorRepo *repository.SponsorRepository,
	subscriberRepo *repository.SubscriberRepository,
	activityRepo *repository.ActivityRepository,
	provider analytics.Provider,
) *DashboardHandler {
	return &DashboardHandler{
		episodeRepo:    episodeRepo,
		reelRepo:       reelRepo,
		sponsorRepo:    sponsorRepo,
		subscriberRepo: subscriberRepo,
		activityRepo:   activityRepo,
		provider:       provider,
	}
}

// Dashboard returns total and last-30-days counts per entity
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	since := time.Now().Add(-recentWindow)

	totalEpisodes, err := h.episodeRepo.Count()
	if err != nil {
		ServerError(c, "Failed to count episodes", err)
		return
	}
	totalReels, err := h.reelRepo.Count()
	if err != nil {
		ServerError(c, "Failed to count reels", err)
		return
	}
	totalSponsors, err := h.sponsorRepo.Count()
	if err != nil {
		ServerError(c, "Failed to count sponsors", err)
		return
	}
	totalSubscribers, err := h.subscriberRepo.Count()
	if err != nil {
		ServerError(c, "Failed to count subscribers", err)
		return
	}
	recentEpisodes, err := h.episodeRepo.CountSince(since)
	if err != nil {
		ServerError(c, "Failed to count recent episodes", err)
		return
	}
	recentReels, err := h.reelRepo.CountSince(since)
	if err != nil {
		ServerError(c, "Failed to count recent reels", err)
		return
	}
	recentSubscribers, err := h.subscriberRepo.CountSince(since)
	if err != nil {
		ServerError(c, "Failed to count recent subscribers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_episodes":     totalEpisodes,
		"total_reels":        totalReels,
		"total_sponsors":     totalSponsors,
		"total_subscribers":  totalSubscribers,
		"recent_episodes":    recentEpisodes,
		"recent_reels":       recentReels,
		"recent_subscribers": recentSubscribers,
	})
}

// GrowthPoint is one day on the subscriber growth chart: the cumulative
// subscriber count at the end of that day.
type GrowthPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Analytics returns the subscriber growth series (real rows) and platform
// view metrics from the provider (simulated, and labeled as such).
func (h *DashboardHandler) Analytics(c *gin.Context) {
	signups, err := h.subscriberRepo.ListSignupTimes()
	if err != nil {
		ServerError(c, "Failed to load subscriber growth", err)
		return
	}

	metrics := h.provider.Metrics()

	c.JSON(http.StatusOK, gin.H{
		"subscriber_growth": buildGrowth(signups),
		"platform_views":    metrics.PlatformViews,
		"avg_engagement":    metrics.AvgEngagement,
		"simulated":         metrics.Simulated,
	})
}

// Activity returns the most recent admin actions
func (h *DashboardHandler) Activity(c *gin.Context) {
	activities, err := h.activityRepo.ListRecent(50)
	if err != nil {
		ServerError(c, "Failed to fetch activity log", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// buildGrowth folds signup times (oldest first) into one cumulative point
// per calendar day.
func buildGrowth(signups []time.Time) []GrowthPoint {
	points := []GrowthPoint{}
	for i, t := range signups {
		date := t.Format("2006-01-02")
		if n := len(points); n > 0 && points[n-1].Date == date {
			points[n-1].Count = i + 1
			continue
		}
		points = append(points, GrowthPoint{Date: date, Count: i + 1})
	}
	return points
}
