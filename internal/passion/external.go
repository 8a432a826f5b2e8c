package passion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

// ExternalProvider fetches an extended passion ladder from a companion
// service once at startup and serves it from memory afterwards.
type ExternalProvider struct {
	baseURL    string
	httpClient *http.Client

	levels  []colony.Passion
	factors map[colony.Passion]float64
}

type externalLevel struct {
	Name        string  `json:"name"`
	LearnFactor float64 `json:"learn_factor"`
}

func NewExternalProvider(baseURL string) *ExternalProvider {
	return &ExternalProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		factors:    make(map[colony.Passion]float64),
	}
}

// Fetch loads the ladder from the companion service. Must succeed before
// the provider is used; there is no lazy retry.
func (p *ExternalProvider) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/api/v1/passions", nil)
	if err != nil {
		return err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch passions: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("fetch passions: %d %s", resp.StatusCode, string(body))
	}

	var levels []externalLevel
	if err := json.Unmarshal(body, &levels); err != nil {
		return fmt.Errorf("parse passions: %w", err)
	}
	if len(levels) == 0 {
		return fmt.Errorf("passion service returned empty ladder")
	}

	p.levels = p.levels[:0]
	for _, l := range levels {
		level := colony.Passion(l.Name)
		p.levels = append(p.levels, level)
		p.factors[level] = l.LearnFactor
	}
	return nil
}

func (p *ExternalProvider) Levels() []colony.Passion { return p.levels }

func (p *ExternalProvider) Known(level colony.Passion) bool {
	_, ok := p.factors[level]
	return ok
}

func (p *ExternalProvider) LearnFactor(level colony.Passion) float64 {
	if f, ok := p.factors[level]; ok {
		return f
	}
	return 1.0
}
