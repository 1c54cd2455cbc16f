package dataset

import (
	"strings"
	"testing"
)

func TestReadWaveformColumn(t *testing.T) {
	w, err := ReadWaveformCSV(strings.NewReader("1.5\n-2.0\n0.25\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []float64{1.5, -2.0, 0.25}
	if len(w) != len(want) {
		t.Fatalf("got %d samples, want %d", len(w), len(want))
	}
	for i := range want {
		if w[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestReadWaveformRow(t *testing.T) {
	w, err := ReadWaveformCSV(strings.NewReader("1.5,-2.0,0.25,3.0\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []float64{1.5, -2.0, 0.25, 3.0}
	if len(w) != len(want) {
		t.Fatalf("got %d samples, want %d", len(w), len(want))
	}
	for i := range want {
		if w[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestReadWaveformEmpty(t *testing.T) {
	if _, err := ReadWaveformCSV(strings.NewReader("")); err == nil {
		t.Fatal("empty trace should fail")
	}
}
