package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/passion"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

// memStore is an in-memory Store for API tests.
type memStore struct {
	presets map[uuid.UUID]*store.FilterPreset
	rules   map[string]*store.RuleRecord
}

func newMemStore() *memStore {
	return &memStore{
		presets: make(map[uuid.UUID]*store.FilterPreset),
		rules:   make(map[string]*store.RuleRecord),
	}
}

func (m *memStore) CreatePreset(_ context.Context, p *store.FilterPreset) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.presets[p.ID] = p
	return nil
}

func (m *memStore) GetPreset(_ context.Context, id uuid.UUID) (*store.FilterPreset, error) {
	return m.presets[id], nil
}

func (m *memStore) ListPresets(_ context.Context, roleID string) ([]*store.FilterPreset, error) {
	var out []*store.FilterPreset
	for _, p := range m.presets {
		if roleID != "" && p.RoleID != roleID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) UpdatePreset(_ context.Context, p *store.FilterPreset) error {
	p.UpdatedAt = time.Now()
	m.presets[p.ID] = p
	return nil
}

func (m *memStore) DeletePreset(_ context.Context, id uuid.UUID) error {
	delete(m.presets, id)
	return nil
}

func (m *memStore) SaveRule(_ context.Context, rec *store.RuleRecord) error {
	rec.UpdatedAt = time.Now()
	m.rules[strings.ToLower(rec.RoleID)] = rec
	return nil
}

func (m *memStore) GetRule(_ context.Context, roleID string) (*store.RuleRecord, error) {
	return m.rules[strings.ToLower(roleID)], nil
}

func (m *memStore) ListRules(_ context.Context) ([]*store.RuleRecord, error) {
	var out []*store.RuleRecord
	for _, r := range m.rules {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) DeleteRule(_ context.Context, roleID string) error {
	delete(m.rules, strings.ToLower(roleID))
	return nil
}

func (m *memStore) Close() error { return nil }

type testEnv struct {
	store  *memStore
	feed   *colony.Feed
	engine *scoring.Engine
	router http.Handler
}

func newTestEnv(t *testing.T, adminToken string) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := defs.NewStaticProvider(defs.Base())
	engine, err := scoring.NewEngine(provider, logger)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	feed := colony.NewFeed(logger)
	feed.UpsertPawn(&colony.Pawn{
		ID:     "p1",
		Name:   "Ada",
		Kind:   colony.KindColonist,
		Traits: []string{"industrious"},
		Skills: map[string]float64{"medicine": 9},
		Passions: map[string]colony.Passion{
			"medicine": colony.PassionMajor,
		},
	})
	feed.UpsertPawn(&colony.Pawn{
		ID:   "p2",
		Name: "Bors",
		Kind: colony.KindPrisoner,
	})
	feed.UpsertItem(&colony.Item{
		ID:      "i1",
		DefName: "BoltActionRifle",
		Stats: map[string]float64{
			"rangeddamage":   18,
			"rangedcooldown": 1.5,
			"warmuptime":     1.7,
			"accuracymedium": 0.9,
		},
	})
	feed.UpsertItem(&colony.Item{
		ID:      "i2",
		DefName: "MachinePistol",
		Stats: map[string]float64{
			"rangeddamage":   8,
			"rangedcooldown": 1.0,
			"warmuptime":     0.3,
			"burstcount":     3,
			"accuracymedium": 0.5,
		},
	})

	s := newMemStore()
	router := NewRouter(s, feed, engine, provider, passion.NewNativeProvider(), adminToken, logger)
	return &testEnv{store: s, feed: feed, engine: engine, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
