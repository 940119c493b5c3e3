package tui

import (
	"strings"
	"testing"

	"sphfluid/internal/viz"
)

func TestMin2(t *testing.T) {
	if got := min2(3, 7); got != 3 {
		t.Errorf("min2(3,7) = %d, want 3", got)
	}
	if got := min2(9, 2); got != 2 {
		t.Errorf("min2(9,2) = %d, want 2", got)
	}
}

func TestDensityLegendSpansRange(t *testing.T) {
	cm := viz.NewColormap(viz.ThemeOcean, 900, 1100)
	legend := densityLegend(cm, 900, 1100)
	if !strings.Contains(legend, "900") || !strings.Contains(legend, "1100") {
		t.Errorf("legend missing range bounds: %q", legend)
	}
}

func TestCycleThemeAdvancesAndWraps(t *testing.T) {
	m := NewModel()
	start := m.theme.Name
	names := viz.ThemeNames()

	for range names {
		m.cycleTheme()
	}
	if m.theme.Name != start {
		t.Errorf("expected cycling through all %d themes to return to %q, got %q", len(names), start, m.theme.Name)
	}
}

func TestNewModelListsRegistryScenarios(t *testing.T) {
	m := NewModel()
	if len(m.scenarios) == 0 {
		t.Fatal("expected at least one scenario listed")
	}
	if m.screen != screenMenu {
		t.Error("expected new model to start on the menu screen")
	}
}
