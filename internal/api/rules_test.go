package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
)

func ruleWeight(doc scoring.RuleDocument, stat string) (scoring.ScoreWeight, bool) {
	for _, w := range doc.Weights {
		if w.Stat == stat {
			return w, true
		}
	}
	return scoring.ScoreWeight{}, false
}

func TestGetRuleReturnsSeededDefaults(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/api/v1/rules/doctor", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	doc := decode[scoring.RuleDocument](t, rec)
	assert.Equal(t, "doctor", doc.RoleID)
	w, ok := ruleWeight(doc, "MedicalTendQuality")
	assert.True(t, ok)
	assert.Equal(t, 1.5, w.Weight)
}

func TestSetWeightPersists(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPut, "/api/v1/rules/doctor/weights", SetWeightRequest{
		Stat:   "MoveSpeed",
		Weight: 0.4,
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	doc := decode[scoring.RuleDocument](t, rec)
	w, ok := ruleWeight(doc, "MoveSpeed")
	assert.True(t, ok)
	assert.Equal(t, 0.4, w.Weight)

	// persisted alongside the in-memory rule
	saved := env.store.rules["doctor"]
	assert.NotNil(t, saved)
	_, ok = ruleWeight(scoring.RuleDocument{Weights: saved.Weights}, "MoveSpeed")
	assert.True(t, ok)
}

func TestSetWeightClampsToCap(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPut, "/api/v1/rules/doctor/weights", SetWeightRequest{
		Stat:   "MoveSpeed",
		Weight: 7.5,
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	doc := decode[scoring.RuleDocument](t, rec)
	w, _ := ruleWeight(doc, "MoveSpeed")
	assert.Equal(t, scoring.WeightCap, w.Weight)
}

func TestSetWeightRejectsUnknownDimension(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPut, "/api/v1/rules/doctor/weights", SetWeightRequest{
		Stat:   "FluxCapacitance",
		Weight: 1.0,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteWeight(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodDelete, "/api/v1/rules/doctor/weights/MedicalTendQuality", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	doc := decode[scoring.RuleDocument](t, rec)
	_, ok := ruleWeight(doc, "MedicalTendQuality")
	assert.False(t, ok)
}

func TestResetRestoresDefaults(t *testing.T) {
	env := newTestEnv(t, "admin-token")

	rec := env.do(t, http.MethodDelete, "/api/v1/rules/doctor/weights/MedicalTendQuality", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/rules/doctor/reset", nil, map[string]string{
		"Authorization": "Bearer admin-token",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	doc := decode[scoring.RuleDocument](t, rec)
	w, ok := ruleWeight(doc, "MedicalTendQuality")
	assert.True(t, ok)
	assert.Equal(t, 1.5, w.Weight)

	// the persisted override is gone too
	assert.Nil(t, env.store.rules["doctor"])
}
