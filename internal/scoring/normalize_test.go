package scoring

import (
	"math"
	"testing"
)

func TestNormalizeDegenerateRange(t *testing.T) {
	r := NewStatRanges()
	if got := r.Normalize("MoveSpeed", 4.6); got != 0 {
		t.Errorf("first observation should normalize to 0, got %f", got)
	}
	if got := r.Normalize("MoveSpeed", 4.6); got != 0 {
		t.Errorf("repeated identical observation should normalize to 0, got %f", got)
	}
}

func TestNormalizePositiveRange(t *testing.T) {
	r := NewStatRanges()
	r.Normalize("yield", 0)
	r.Normalize("yield", 10)

	tests := []struct {
		raw  float64
		want float64
	}{
		{0, 0.0},
		{5, 0.5},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := r.Normalize("yield", tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize(%f) = %f, want %f", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeNegativeRange(t *testing.T) {
	r := NewStatRanges()
	r.Normalize("penalty", -10)
	r.Normalize("penalty", -2)

	if got := r.Normalize("penalty", -10); math.Abs(got-(-1)) > 1e-9 {
		t.Errorf("min of all-negative range should map to -1, got %f", got)
	}
	if got := r.Normalize("penalty", -2); math.Abs(got-0) > 1e-9 {
		t.Errorf("max of all-negative range should map to 0, got %f", got)
	}
}

func TestNormalizeStraddlingRange(t *testing.T) {
	r := NewStatRanges()
	r.Normalize("deviation", -4)
	r.Normalize("deviation", 4)

	tests := []struct {
		raw  float64
		want float64
	}{
		{-4, -1.0},
		{0, 0.0},
		{4, 1.0},
		{2, 0.5},
	}
	for _, tt := range tests {
		if got := r.Normalize("deviation", tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize(%f) = %f, want %f", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeBoundsOnlyWiden(t *testing.T) {
	r := NewStatRanges()
	values := []float64{3, -7, 12, 0, 5, -2, 12, -7}
	for _, v := range values {
		got := r.Normalize("dim", v)
		if got < -1 || got > 1 {
			t.Fatalf("Normalize(%f) = %f outside [-1,1]", v, got)
		}
	}

	min, max, ok := r.Observed("dim")
	if !ok {
		t.Fatal("expected observed range")
	}
	if min != -7 || max != 12 {
		t.Errorf("observed range [%f,%f], want [-7,12]", min, max)
	}

	// narrower observations must not shrink the bounds
	r.Normalize("dim", 1)
	min, max, _ = r.Observed("dim")
	if min != -7 || max != 12 {
		t.Errorf("bounds narrowed to [%f,%f]", min, max)
	}
}

func TestNormalizeClampsOutOfRangeInput(t *testing.T) {
	r := NewStatRanges()
	r.Normalize("dim", 0)
	r.Normalize("dim", 10)

	// 20 widens the range first, so it maps to the new max
	if got := r.Normalize("dim", 20); math.Abs(got-1) > 1e-9 {
		t.Errorf("widened max should map to 1, got %f", got)
	}
}

func TestNormalizeCaseInsensitiveKeys(t *testing.T) {
	r := NewStatRanges()
	r.Normalize("MoveSpeed", 0)
	r.Normalize("movespeed", 10)

	min, max, ok := r.Observed("MOVESPEED")
	if !ok {
		t.Fatal("expected shared observed range across casings")
	}
	if min != 0 || max != 10 {
		t.Errorf("observed range [%f,%f], want [0,10]", min, max)
	}
}
