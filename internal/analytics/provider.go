// Package analytics supplies platform view metrics for the admin area.
// Real platform APIs are not integrated; the simulated provider stands in
// behind the Provider interface so the handlers never know the difference.
package analytics

import (
	"math/rand"
	"sync"
)

// PlatformViews holds per-platform view counts.
type PlatformViews struct {
	Spotify int `json:"spotify"`
	YouTube int `json:"youtube"`
	Apple   int `json:"apple"`
	Amazon  int `json:"amazon"`
}

// Metrics is the typed result a Provider returns.
type Metrics struct {
	PlatformViews PlatformViews `json:"platform_views"`
	AvgEngagement int           `json:"avg_engagement"`
	Simulated     bool          `json:"simulated"`
}

// Provider returns platform metrics for the analytics page.
type Provider interface {
	Metrics() Metrics
}

// SimulatedProvider generates plausible-looking numbers. Responses are
// labeled simulated so the UI can say so.
type SimulatedProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedProvider(seed int64) *SimulatedProvider {
	return &SimulatedProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *SimulatedProvider) Metrics() Metrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Metrics{
		PlatformViews: PlatformViews{
			Spotify: p.rng.Intn(10000) + 1000,
			YouTube: p.rng.Intn(8000) + 500,
			Apple:   p.rng.Intn(5000) + 300,
			Amazon:  p.rng.Intn(3000) + 200,
		},
		AvgEngagement: p.rng.Intn(100) + 50,
		Simulated:     true,
	}
}
