package plotting

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadStyleDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	sty := LoadStyle()
	if sty != DefaultStyle() {
		t.Fatalf("no style file should yield defaults, got %+v", sty)
	}
}

func TestLoadStyleOverlay(t *testing.T) {
	dir := t.TempDir()
	yaml := "dpi: 120\nmetric:\n  max: 12\nhistogram:\n  bins: 25\n"
	if err := os.WriteFile(filepath.Join(dir, "plot_style.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
	chdir(t, dir)

	sty := LoadStyle()
	if sty.DPI != 120 {
		t.Fatalf("dpi = %d, want 120", sty.DPI)
	}
	if sty.MetricMax != 12 {
		t.Fatalf("metric max = %v, want 12", sty.MetricMax)
	}
	if sty.HistBins != 25 {
		t.Fatalf("bins = %d, want 25", sty.HistBins)
	}
	// Untouched keys keep their defaults.
	if sty.TPCWidth != DefaultStyle().TPCWidth {
		t.Fatalf("tpc width = %d, want default", sty.TPCWidth)
	}
	if sty.MetricMin != DefaultStyle().MetricMin {
		t.Fatalf("metric min = %v, want default", sty.MetricMin)
	}
}
