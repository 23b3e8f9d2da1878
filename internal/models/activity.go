package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Activity types recorded on admin writes.
const (
	ActivityEpisodeCreated = "episode_created"
	ActivityEpisodeUpdated = "episode_updated"
	ActivityEpisodeDeleted = "episode_deleted"
	ActivityReelCreated    = "reel_created"
	ActivityReelUpdated    = "reel_updated"
	ActivityReelDeleted    = "reel_deleted"
	ActivitySponsorCreated = "sponsor_created"
	ActivitySponsorUpdated = "sponsor_updated"
	ActivitySponsorDeleted = "sponsor_deleted"
)

// Activity is an append-only log entry for an admin action. New entries are
// pushed to connected dashboards over the websocket feed.
type Activity struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	AdminID      uuid.UUID       `json:"admin_id" db:"admin_id"`
	ActivityType string          `json:"activity_type" db:"activity_type"`
	Description  string          `json:"description" db:"description"`
	Metadata     json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
