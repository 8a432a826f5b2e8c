package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Quartermaster/internal/filter"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
)

// FilterPreset is a named, persisted pawn filter, optionally bound to a
// work role.
type FilterPreset struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	RoleID    string         `json:"role_id,omitempty"`
	Document  *filter.Filter `json:"document"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// RuleRecord is a persisted scoring rule document.
type RuleRecord struct {
	RoleID    string                `json:"role_id"`
	Weights   []scoring.ScoreWeight `json:"weights"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Store persists filter presets and scoring rules. Get methods return
// (nil, nil) for a missing record.
type Store interface {
	CreatePreset(ctx context.Context, p *FilterPreset) error
	GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error)
	ListPresets(ctx context.Context, roleID string) ([]*FilterPreset, error)
	UpdatePreset(ctx context.Context, p *FilterPreset) error
	DeletePreset(ctx context.Context, id uuid.UUID) error

	SaveRule(ctx context.Context, rec *RuleRecord) error
	GetRule(ctx context.Context, roleID string) (*RuleRecord, error)
	ListRules(ctx context.Context) ([]*RuleRecord, error)
	DeleteRule(ctx context.Context, roleID string) error

	Close() error
}
