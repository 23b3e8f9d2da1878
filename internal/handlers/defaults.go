package handlers

import "github.com/noplanb/backend/internal/models"

// Curated reels shown on the public page while the store holds no rows.
// Policy: the defaults replace an empty result set only; they are never
// merged with live data.
var defaultReels = []models.Reel{
	{EmbedURL: "https://www.youtube.com/embed/U3BaDTMkvQ0", Caption: strPtr("He turned a religion into a business & made millions🤣")},
	{EmbedURL: "https://www.youtube.com/embed/d7Ya-Y0Kv78", Caption: strPtr("Why can't we be full of ourselves?")},
	{EmbedURL: "https://www.youtube.com/embed/n0dflCF_Z2Y", Caption: strPtr("Having a baby changed my life")},
	{EmbedURL: "https://www.youtube.com/embed/rCOY9cuqdCE", Caption: strPtr("Debbie talks about the dark side of the aesthetics game")},
	{EmbedURL: "https://www.youtube.com/embed/mvWQNb0A7KY", Caption: strPtr("Working away a lot isn't for the weak. Need a strong woman by your side")},
	{EmbedURL: "https://www.youtube.com/embed/6ycdwA7eLZ0", Caption: strPtr("Wild night to be a doorman")},
}

func strPtr(s string) *string {
	return &s
}
