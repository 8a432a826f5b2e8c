package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/filter"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

func TestMatchWithInlineDocument(t *testing.T) {
	env := newTestEnv(t, "")

	doc := filter.New()
	doc.KindsState = filter.Enabled
	doc.Kinds = []colony.Kind{colony.KindColonist}

	rec := env.do(t, http.MethodPost, "/api/v1/match", MatchRequest{Document: doc}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[MatchResponse](t, rec)
	assert.Equal(t, 2, resp.Evaluated)
	assert.Equal(t, []string{"p1"}, resp.Matched)
}

func TestMatchRequiresDocumentOrPreset(t *testing.T) {
	env := newTestEnv(t, "")
	rec := env.do(t, http.MethodPost, "/api/v1/match", MatchRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchWithStoredPreset(t *testing.T) {
	env := newTestEnv(t, "")

	doc := filter.New()
	doc.PassionsState = filter.Enabled
	doc.Passions = []colony.Passion{colony.PassionMajor}

	rec := env.do(t, http.MethodPost, "/api/v1/presets", PresetRequest{
		Name:     "passionate medics",
		RoleID:   "doctor",
		Document: doc,
	}, nil)
	created := decode[store.FilterPreset](t, rec)

	// preset carries its role, so passion matching runs over medicine only
	rec = env.do(t, http.MethodPost, "/api/v1/match", MatchRequest{PresetID: created.ID.String()}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[MatchResponse](t, rec)
	assert.Equal(t, []string{"p1"}, resp.Matched)
}

func TestMatchCombinesFallbackPreset(t *testing.T) {
	env := newTestEnv(t, "")

	fallbackDoc := filter.New()
	fallbackDoc.KindsState = filter.Enabled
	fallbackDoc.Kinds = []colony.Kind{colony.KindPrisoner}

	rec := env.do(t, http.MethodPost, "/api/v1/presets", PresetRequest{
		Name:     "prisoners",
		Document: fallbackDoc,
	}, nil)
	fallback := decode[store.FilterPreset](t, rec)

	// inheriting primary defers its kind group to the fallback
	primary := filter.NewInheriting()

	rec = env.do(t, http.MethodPost, "/api/v1/match", MatchRequest{
		Document:   primary,
		FallbackID: fallback.ID.String(),
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[MatchResponse](t, rec)
	assert.Equal(t, []string{"p2"}, resp.Matched)
}

func TestMatchUnknownPreset(t *testing.T) {
	env := newTestEnv(t, "")
	rec := env.do(t, http.MethodPost, "/api/v1/match", MatchRequest{
		PresetID: "00000000-0000-0000-0000-000000000001",
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRankEndpoint(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/v1/rank/hunter", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[RankResponse](t, rec)
	assert.Equal(t, "hunter", resp.RoleID)
	assert.Len(t, resp.Ranked, 2)
	// the pistol's burst fire out-damages the rifle at every band
	assert.Equal(t, "i2", resp.Ranked[0].Ident)
	assert.GreaterOrEqual(t, resp.Ranked[0].Score, resp.Ranked[1].Score)
}

func TestRankLimit(t *testing.T) {
	env := newTestEnv(t, "")
	rec := env.do(t, http.MethodGet, "/api/v1/rank/hunter?limit=1", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[RankResponse](t, rec)
	assert.Len(t, resp.Ranked, 1)
}

func TestRolesEndpoint(t *testing.T) {
	env := newTestEnv(t, "")
	rec := env.do(t, http.MethodGet, "/api/v1/roles", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[map[string][]string](t, rec)
	assert.Contains(t, resp["roles"], "doctor")
	assert.Contains(t, resp["roles"], "hunter")
}
