package passion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

func TestNativeProviderLadder(t *testing.T) {
	p := NewNativeProvider()

	levels := p.Levels()
	want := []colony.Passion{colony.PassionNone, colony.PassionMinor, colony.PassionMajor}
	if len(levels) != len(want) {
		t.Fatalf("ladder length = %d, want %d", len(levels), len(want))
	}
	for i, w := range want {
		if levels[i] != w {
			t.Errorf("ladder[%d] = %s, want %s", i, levels[i], w)
		}
	}

	if !p.Known(colony.PassionMinor) || p.Known(colony.Passion("burning")) {
		t.Error("Known misreports")
	}
	if p.LearnFactor(colony.PassionMajor) != 1.5 {
		t.Errorf("major factor = %f", p.LearnFactor(colony.PassionMajor))
	}
	if p.LearnFactor(colony.PassionNone) != 0.35 {
		t.Errorf("none factor = %f", p.LearnFactor(colony.PassionNone))
	}
}

func TestExternalProviderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/passions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"none","learn_factor":0.3},
			{"name":"minor","learn_factor":1.0},
			{"name":"major","learn_factor":1.5},
			{"name":"burning","learn_factor":2.0}
		]`))
	}))
	defer srv.Close()

	p := NewExternalProvider(srv.URL)
	if err := p.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(p.Levels()) != 4 {
		t.Fatalf("ladder length = %d, want 4", len(p.Levels()))
	}
	if p.Levels()[3] != colony.Passion("burning") {
		t.Errorf("top level = %s, want burning", p.Levels()[3])
	}
	if p.LearnFactor("burning") != 2.0 {
		t.Errorf("burning factor = %f", p.LearnFactor("burning"))
	}
	if !p.Known("burning") || p.Known("searing") {
		t.Error("Known misreports")
	}
	// unknown levels fall back to neutral
	if p.LearnFactor("searing") != 1.0 {
		t.Errorf("unknown factor = %f, want 1.0", p.LearnFactor("searing"))
	}
}

func TestExternalProviderFetchErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"empty ladder", `[]`, http.StatusOK},
		{"server error", `boom`, http.StatusInternalServerError},
		{"bad json", `{nope`, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			p := NewExternalProvider(srv.URL)
			if err := p.Fetch(context.Background()); err == nil {
				t.Error("expected fetch error")
			}
		})
	}
}
