package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/filter"
	"github.com/MikeSquared-Agency/Quartermaster/internal/passion"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

type EvaluateHandler struct {
	store    store.Store
	feed     *colony.Feed
	engine   *scoring.Engine
	defs     defs.Provider
	passions passion.Provider
}

func NewEvaluateHandler(s store.Store, feed *colony.Feed, engine *scoring.Engine, provider defs.Provider, passions passion.Provider) *EvaluateHandler {
	return &EvaluateHandler{
		store:    s,
		feed:     feed,
		engine:   engine,
		defs:     provider,
		passions: passions,
	}
}

type MatchRequest struct {
	// Either an inline filter document or a stored preset.
	Document *filter.Filter `json:"document,omitempty"`
	PresetID string         `json:"preset_id,omitempty"`
	// Optional fallback preset combined under the document in
	// inheriting mode.
	FallbackID string `json:"fallback_id,omitempty"`
	RoleID     string `json:"role_id,omitempty"`
}

type MatchResponse struct {
	Matched   []string `json:"matched"`
	Evaluated int      `json:"evaluated"`
}

// Match evaluates a filter over the live pawn set.
func (h *EvaluateHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	f, roleID, ok := h.resolveFilter(w, r, &req)
	if !ok {
		return
	}

	ctx := h.matchContext(roleID)
	pawns := h.feed.Pawns()

	resp := MatchResponse{Matched: []string{}, Evaluated: len(pawns)}
	for _, p := range pawns {
		if f.Matches(p, ctx) {
			resp.Matched = append(resp.Matched, p.ID)
		}
	}

	matchRequests.Inc()
	pawnsEvaluated.Add(float64(len(pawns)))
	writeJSON(w, http.StatusOK, resp)
}

func (h *EvaluateHandler) resolveFilter(w http.ResponseWriter, r *http.Request, req *MatchRequest) (*filter.Filter, string, bool) {
	roleID := req.RoleID

	f := req.Document
	if req.PresetID != "" {
		preset, ok := h.fetchPreset(w, r, req.PresetID)
		if !ok {
			return nil, "", false
		}
		f = preset.Document
		if roleID == "" {
			roleID = preset.RoleID
		}
	}
	if f == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document or preset_id required"})
		return nil, "", false
	}

	if req.FallbackID != "" {
		fallback, ok := h.fetchPreset(w, r, req.FallbackID)
		if !ok {
			return nil, "", false
		}
		f = filter.Combine(f, fallback.Document)
	}
	return f, roleID, true
}

func (h *EvaluateHandler) fetchPreset(w http.ResponseWriter, r *http.Request, id string) (*store.FilterPreset, bool) {
	pid, err := uuid.Parse(id)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid preset id"})
		return nil, false
	}
	preset, err := h.store.GetPreset(r.Context(), pid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	if preset == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return nil, false
	}
	return preset, true
}

func (h *EvaluateHandler) matchContext(roleID string) *filter.Context {
	ctx := &filter.Context{
		Catalog:  h.engine.Catalog,
		Passions: h.passions,
	}
	if roleID != "" {
		if role, ok := h.defs.Role(roleID); ok {
			ctx.RoleSkills = role.Skills
		}
	}
	return ctx
}

type RankResponse struct {
	RoleID string                    `json:"role_id"`
	Ranked []scoring.RankedCandidate `json:"ranked"`
}

// Rank scores the live item set for a role, best first.
func (h *EvaluateHandler) Rank(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")

	items := h.feed.Items()
	candidates := make([]scoring.Candidate, len(items))
	for i, it := range items {
		candidates[i] = it
	}

	rule := h.engine.Rules.RuleFor(role)
	ranked := rule.Rank(candidates)

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 && limit < len(ranked) {
			ranked = ranked[:limit]
		}
	}

	rankRequests.WithLabelValues(role).Inc()
	writeJSON(w, http.StatusOK, RankResponse{RoleID: role, Ranked: ranked})
}

// Stats reports live feed counts and known roles.
func (h *EvaluateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	pawns, items, updatedAt := h.feed.Counts()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pawns":      pawns,
		"items":      items,
		"updated_at": updatedAt,
		"roles":      h.engine.Rules.Roles(),
		"dimensions": h.engine.Catalog.Size(),
	})
}
