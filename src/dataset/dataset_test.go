package dataset

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// testFrame builds a small synthetic metric table spanning two TPCs, two
// planes, and two flanges.
func testFrame(t *testing.T) *Dataset {
	t.Helper()
	df := dataframe.New(
		series.New([]int{0, 0, 0, 1, 1}, series.Int, "tpc"),
		series.New([]int{0, 0, 1, 0, 1}, series.Int, "plane"),
		series.New([]int{10, 11, 2400, 13830, 16200}, series.Int, "channel_id"),
		series.New([]float64{3.5, 4.1, 2.2, 5.0, 1.1}, series.Float, "rawrms"),
		series.New([]string{"WW19", "WW19", "WW20", "WW19", "WW20"}, series.String, "flange"),
		series.New([]int{0, 0, 1, 2, 8}, series.Int, "board"),
		series.New([]int{4, 5, 10, 0, 63}, series.Int, "ch"),
	)
	ds, err := New(df)
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}
	return ds
}

func TestSelectTPCPlane(t *testing.T) {
	ds := testFrame(t)
	sel, err := ds.SelectTPCPlane(0, 0)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	ids, err := sel.Column("channel_id")
	if err != nil {
		t.Fatalf("channel_id: %v", err)
	}
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 11 {
		t.Fatalf("tpc=0 plane=0 selected %v, want [10 11]", ids)
	}

	sel, err = ds.SelectTPCPlane(1, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	vals, err := sel.Column("rawrms")
	if err != nil {
		t.Fatalf("rawrms: %v", err)
	}
	if len(vals) != 1 || vals[0] != 1.1 {
		t.Fatalf("tpc=1 plane=1 selected %v, want [1.1]", vals)
	}

	sel, err = ds.SelectTPCPlane(3, 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Nrow() != 0 {
		t.Fatalf("tpc=3 plane=2 selected %d rows, want 0", sel.Nrow())
	}
}

func TestSelectFlange(t *testing.T) {
	ds := testFrame(t)
	sel, err := ds.SelectFlange("WW19")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Nrow() != 3 {
		t.Fatalf("WW19 selected %d rows, want 3", sel.Nrow())
	}
	sel, err = ds.SelectFlange("EE01")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Nrow() != 0 {
		t.Fatalf("EE01 selected %d rows, want 0", sel.Nrow())
	}
}

func TestCrateCoordinates(t *testing.T) {
	ds := testFrame(t)
	sel, err := ds.SelectFlange("WW19")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	xs, err := sel.CrateCoordinates()
	if err != nil {
		t.Fatalf("coordinates: %v", err)
	}
	// 64*board + ch for the three WW19 rows.
	want := []float64{4, 5, 128}
	if len(xs) != len(want) {
		t.Fatalf("got %d coordinates, want %d", len(xs), len(want))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("coordinate %d = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestColumnMissing(t *testing.T) {
	ds := testFrame(t)
	if _, err := ds.Column("nope"); err == nil {
		t.Fatal("missing column should fail")
	}
	if ds.Has("nope") {
		t.Fatal("Has(nope) should be false")
	}
	if !ds.Has("rawrms") {
		t.Fatal("Has(rawrms) should be true")
	}
}

func TestReadCSV(t *testing.T) {
	csv := "tpc,plane,channel_id,rawrms\n0,0,1,2.5\n0,1,2,3.5\n"
	ds, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if ds.Nrow() != 2 {
		t.Fatalf("got %d rows, want 2", ds.Nrow())
	}
	vals, err := ds.Column("rawrms")
	if err != nil {
		t.Fatalf("rawrms: %v", err)
	}
	if vals[0] != 2.5 || vals[1] != 3.5 {
		t.Fatalf("rawrms = %v", vals)
	}
}
