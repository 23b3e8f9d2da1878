package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noplanb/backend/internal/cache"
	"github.com/noplanb/backend/internal/models"
	"github.com/noplanb/backend/internal/repository"
)

// Cache keys for the public list payloads. Each admin write invalidates
// the key for its entity; the landing page derives from the same keys.
const (
	cacheKeyEpisodes = "public:episodes"
	cacheKeyReels    = "public:reels"
	cacheKeySponsors = "public:sponsors"
)

// PublicHandler serves the read-only site endpoints. Lists are fetched
// whole (through the cache when Redis is up) and narrowed in memory, so a
// search never issues a second store query.
type PublicHandler struct {
	episodeRepo *repository.EpisodeRepository
	reelRepo    *repository.ReelRepository
	sponsorRepo *repository.SponsorRepository
	redis       *cache.RedisClient
	cacheTTL    time.Duration
}

func NewPublicHandler(
	episodeRepo *repository.EpisodeRepository,
	reelRepo *repository.ReelRepository,
	sponsorRepo *repository.SponsorRepository,
	redis *cache.RedisClient,
	cacheTTL time.Duration,
) *PublicHandler {
	return &PublicHandler{
		episodeRepo: episodeRepo,
		reelRepo:    reelRepo,
		sponsorRepo: sponsorRepo,
		redis:       redis,
		cacheTTL:    cacheTTL,
	}
}

// ListEpisodes returns episodes newest first. Query params: search
// (substring over title/description/guest), featured=true, limit.
// The total field always reflects the unfiltered count so clients can
// tell "no content yet" apart from "no matches".
func (h *PublicHandler) ListEpisodes(c *gin.Context) {
	episodes, err := h.loadEpisodes()
	if err != nil {
		ServerError(c, "Failed to fetch episodes", err)
		return
	}

	total := len(episodes)

	if c.Query("featured") == "true" {
		filtered := episodes[:0:0]
		for _, e := range episodes {
			if e.Featured {
				filtered = append(filtered, e)
			}
		}
		episodes = filtered
	}

	if search := c.Query("search"); search != "" {
		filtered := episodes[:0:0]
		for _, e := range episodes {
			if episodeMatches(e, search) {
				filtered = append(filtered, e)
			}
		}
		episodes = filtered
	}

	episodes = truncate(episodes, parseLimit(c))

	c.JSON(http.StatusOK, gin.H{"episodes": episodes, "total": total})
}

// ListReels returns reels newest first, with the curated default set
// standing in while the store is empty.
func (h *PublicHandler) ListReels(c *gin.Context) {
	reels, err := h.loadReels()
	if err != nil {
		ServerError(c, "Failed to fetch reels", err)
		return
	}

	fallback := false
	if len(reels) == 0 {
		reels = defaultReels
		fallback = true
	}

	total := len(reels)

	if search := c.Query("search"); search != "" {
		filtered := reels[:0:0]
		for _, r := range reels {
			if reelMatches(r, search) {
				filtered = append(filtered, r)
			}
		}
		reels = filtered
	}

	reels = truncate(reels, parseLimit(c))

	c.JSON(http.StatusOK, gin.H{"reels": reels, "total": total, "fallback": fallback})
}

// ListSponsors returns sponsors featured-first, then alphabetical.
func (h *PublicHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.loadSponsors()
	if err != nil {
		ServerError(c, "Failed to fetch sponsors", err)
		return
	}

	total := len(sponsors)

	if c.Query("featured") == "true" {
		filtered := sponsors[:0:0]
		for _, s := range sponsors {
			if s.Featured {
				filtered = append(filtered, s)
			}
		}
		sponsors = filtered
	}

	if search := c.Query("search"); search != "" {
		filtered := sponsors[:0:0]
		for _, s := range sponsors {
			if sponsorMatches(s, search) {
				filtered = append(filtered, s)
			}
		}
		sponsors = filtered
	}

	sponsors = truncate(sponsors, parseLimit(c))

	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors, "total": total})
}

// Landing returns the homepage teaser payload: the three latest episodes
// and up to four featured sponsors.
func (h *PublicHandler) Landing(c *gin.Context) {
	episodes, err := h.loadEpisodes()
	if err != nil {
		ServerError(c, "Failed to fetch landing episodes", err)
		return
	}
	latest := truncate(episodes, 3)

	sponsors, err := h.loadSponsors()
	if err != nil {
		ServerError(c, "Failed to fetch landing sponsors", err)
		return
	}
	featured := sponsors[:0:0]
	for _, s := range sponsors {
		if s.Featured {
			featured = append(featured, s)
		}
	}
	featured = truncate(featured, 4)

	c.JSON(http.StatusOK, gin.H{
		"latest_episodes":   latest,
		"featured_sponsors": featured,
	})
}

// cache-through loaders

func (h *PublicHandler) loadEpisodes() ([]models.Episode, error) {
	var episodes []models.Episode
	if h.cacheGet(cacheKeyEpisodes, &episodes) {
		return episodes, nil
	}

	episodes, err := h.episodeRepo.List(0, false)
	if err != nil {
		return nil, err
	}
	h.cacheSet(cacheKeyEpisodes, episodes)
	return episodes, nil
}

func (h *PublicHandler) loadReels() ([]models.Reel, error) {
	var reels []models.Reel
	if h.cacheGet(cacheKeyReels, &reels) {
		return reels, nil
	}

	reels, err := h.reelRepo.List(0)
	if err != nil {
		return nil, err
	}
	h.cacheSet(cacheKeyReels, reels)
	return reels, nil
}

func (h *PublicHandler) loadSponsors() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	if h.cacheGet(cacheKeySponsors, &sponsors) {
		return sponsors, nil
	}

	sponsors, err := h.sponsorRepo.List(0, false)
	if err != nil {
		return nil, err
	}
	h.cacheSet(cacheKeySponsors, sponsors)
	return sponsors, nil
}

// cacheGet fills v from Redis, reporting whether it hit. Cache failures
// are logged and treated as misses.
func (h *PublicHandler) cacheGet(key string, v interface{}) bool {
	if h.redis == nil {
		return false
	}
	data, err := h.redis.GetList(key)
	if err != nil {
		log.Printf("Cache read failed for %s: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Cache payload invalid for %s: %v", key, err)
		return false
	}
	return true
}

func (h *PublicHandler) cacheSet(key string, v interface{}) {
	if h.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := h.redis.SetList(key, data, h.cacheTTL); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// filtering helpers

func episodeMatches(e models.Episode, search string) bool {
	return containsFold(e.Title, search) ||
		containsFoldPtr(e.Description, search) ||
		containsFoldPtr(e.Guest, search)
}

func reelMatches(r models.Reel, search string) bool {
	return containsFoldPtr(r.Caption, search)
}

func sponsorMatches(s models.Sponsor, search string) bool {
	return containsFold(s.Name, search) || containsFoldPtr(s.Description, search)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsFoldPtr(s *string, substr string) bool {
	return s != nil && containsFold(*s, substr)
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
