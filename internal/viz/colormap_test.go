package viz

import "testing"

func TestColormapClampsOutOfRangeValues(t *testing.T) {
	cm := NewColormap(ThemeOcean, 0, 100)
	low := cm.Color(-50)
	high := cm.Color(500)
	if low == "" || high == "" {
		t.Fatal("expected non-empty colors")
	}
	if low == high {
		t.Error("expected distinct colors at opposite ends of the range")
	}
}

func TestNormalizeRangeHandlesConstantField(t *testing.T) {
	min, max := NormalizeRange([]float64{5, 5, 5})
	if min != 5 || max != 6 {
		t.Errorf("expected degenerate range widened to [5,6], got [%v,%v]", min, max)
	}
}

func TestNormalizeRangeEmpty(t *testing.T) {
	min, max := NormalizeRange(nil)
	if min != 0 || max != 1 {
		t.Errorf("expected default [0,1] range for empty input, got [%v,%v]", min, max)
	}
}
