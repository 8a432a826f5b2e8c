package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

type RulesHandler struct {
	store  store.Store
	engine *scoring.Engine
}

func NewRulesHandler(s store.Store, engine *scoring.Engine) *RulesHandler {
	return &RulesHandler{store: s, engine: engine}
}

func (h *RulesHandler) Roles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"roles": h.engine.Rules.Roles()})
}

func (h *RulesHandler) Get(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	rule := h.engine.Rules.RuleFor(role)
	writeJSON(w, http.StatusOK, rule.Export())
}

type SetWeightRequest struct {
	Stat      string  `json:"stat"`
	Weight    float64 `json:"weight"`
	Protected bool    `json:"protected,omitempty"`
}

func (h *RulesHandler) SetWeight(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")

	var req SetWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Stat == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "stat required"})
		return
	}
	if h.engine.Catalog.ByName(req.Stat) == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown dimension: " + req.Stat})
		return
	}

	rule := h.engine.Rules.RuleFor(role)
	rule.SetWeight(req.Stat, req.Weight, req.Protected)

	if err := h.persist(r, rule); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rule.Export())
}

// DeleteWeight removes a weight unconditionally. Protected weights are
// deletable too: a UI is expected to gate that, the rule does not.
func (h *RulesHandler) DeleteWeight(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")
	stat := chi.URLParam(r, "stat")

	rule := h.engine.Rules.RuleFor(role)
	rule.DeleteWeight(stat)

	if err := h.persist(r, rule); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rule.Export())
}

// Reset discards a role's rule and its persisted document so the next
// request rebuilds the seeded defaults.
func (h *RulesHandler) Reset(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")

	if err := h.store.DeleteRule(r.Context(), role); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.engine.Rules.Discard(role)
	writeJSON(w, http.StatusOK, h.engine.Rules.RuleFor(role).Export())
}

func (h *RulesHandler) persist(r *http.Request, rule *scoring.Rule) error {
	doc := rule.Export()
	return h.store.SaveRule(r.Context(), &store.RuleRecord{
		RoleID:  doc.RoleID,
		Weights: doc.Weights,
	})
}
