package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
	"github.com/MikeSquared-Agency/Quartermaster/internal/filter"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

type PresetsHandler struct {
	store   store.Store
	catalog *dimension.Catalog
}

func NewPresetsHandler(s store.Store, catalog *dimension.Catalog) *PresetsHandler {
	return &PresetsHandler{store: s, catalog: catalog}
}

type PresetRequest struct {
	Name     string         `json:"name"`
	RoleID   string         `json:"role_id,omitempty"`
	Document *filter.Filter `json:"document"`
}

func (h *PresetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Document == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and document required"})
		return
	}

	req.Document.Validate()
	req.Document.ClampLimits(h.catalog)

	preset := &store.FilterPreset{
		Name:     req.Name,
		RoleID:   req.RoleID,
		Document: req.Document,
	}
	if err := h.store.CreatePreset(r.Context(), preset); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, preset)
}

func (h *PresetsHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.store.ListPresets(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if presets == nil {
		presets = []*store.FilterPreset{}
	}
	writeJSON(w, http.StatusOK, presets)
}

func (h *PresetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	preset, ok := h.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (h *PresetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	preset, ok := h.fetch(w, r)
	if !ok {
		return
	}

	var req PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name != "" {
		preset.Name = req.Name
	}
	if req.RoleID != "" {
		preset.RoleID = req.RoleID
	}
	if req.Document != nil {
		req.Document.Validate()
		req.Document.ClampLimits(h.catalog)
		preset.Document = req.Document
	}

	if err := h.store.UpdatePreset(r.Context(), preset); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (h *PresetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid preset id"})
		return
	}
	if err := h.store.DeletePreset(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PresetsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	preset, ok := h.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    preset.Name,
		"summary": preset.Document.Summary(0),
	})
}

func (h *PresetsHandler) fetch(w http.ResponseWriter, r *http.Request) (*store.FilterPreset, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid preset id"})
		return nil, false
	}
	preset, err := h.store.GetPreset(r.Context(), id)
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
