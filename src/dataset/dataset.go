// Package dataset wraps the tabular per-channel metric data consumed by
// the plotting helpers: column lookup by name, boolean-mask row selection
// on the detector addressing columns, and the channel-map join used by the
// wire-plane view.
package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// Dataset is a read-only table with one row per readout channel. Column
// requirements depend on the figure: per-TPC views need tpc, plane,
// channel_id and a metric column; per-crate views need flange, board, ch
// and a metric column.
type Dataset struct {
	df dataframe.DataFrame
}

// New wraps an existing DataFrame.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: %w", df.Err)
	}
	return &Dataset{df: df}, nil
}

// ReadCSV loads a dataset from CSV with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}
	return &Dataset{df: df}, nil
}

// Open loads a dataset from a CSV file on disk.
func Open(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Nrow returns the number of rows.
func (d *Dataset) Nrow() int { return d.df.Nrow() }

// Has reports whether a column exists.
func (d *Dataset) Has(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns a numeric column as float64 values, one per row.
func (d *Dataset) Column(name string) ([]float64, error) {
	if !d.Has(name) {
		return nil, fmt.Errorf("dataset: no column %q", name)
	}
	col := d.df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("column %q: %w", name, col.Err)
	}
	return col.Float(), nil
}

// Strings returns a column as its string representation, one per row.
func (d *Dataset) Strings(name string) ([]string, error) {
	if !d.Has(name) {
		return nil, fmt.Errorf("dataset: no column %q", name)
	}
	col := d.df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("column %q: %w", name, col.Err)
	}
	return col.Records(), nil
}

// SelectTPCPlane masks the rows whose tpc and plane columns match.
func (d *Dataset) SelectTPCPlane(tpc, plane int) (*Dataset, error) {
	for _, c := range []string{"tpc", "plane"} {
		if !d.Has(c) {
			return nil, fmt.Errorf("dataset: no column %q", c)
		}
	}
	sub := d.df.Filter(
		dataframe.F{Colname: "tpc", Comparator: series.Eq, Comparando: tpc},
	).Filter(
		dataframe.F{Colname: "plane", Comparator: series.Eq, Comparando: plane},
	)
	if sub.Err != nil {
		return nil, fmt.Errorf("select tpc=%d plane=%d: %w", tpc, plane, sub.Err)
	}
	return &Dataset{df: sub}, nil
}

// SelectPlane masks the rows whose plane column matches, across all TPCs.
func (d *Dataset) SelectPlane(plane int) (*Dataset, error) {
	if !d.Has("plane") {
		return nil, fmt.Errorf("dataset: no column %q", "plane")
	}
	sub := d.df.Filter(
		dataframe.F{Colname: "plane", Comparator: series.Eq, Comparando: plane},
	)
	if sub.Err != nil {
		return nil, fmt.Errorf("select plane=%d: %w", plane, sub.Err)
	}
	return &Dataset{df: sub}, nil
}

// SelectFlange masks the rows whose flange column equals the component name.
func (d *Dataset) SelectFlange(name string) (*Dataset, error) {
	if !d.Has("flange") {
		return nil, fmt.Errorf("dataset: no column %q", "flange")
	}
	sub := d.df.Filter(
		dataframe.F{Colname: "flange", Comparator: series.Eq, Comparando: name},
	)
	if sub.Err != nil {
		return nil, fmt.Errorf("select flange=%q: %w", name, sub.Err)
	}
	return &Dataset{df: sub}, nil
}

// CrateCoordinates computes the within-crate channel number 64*board + ch
// for every row, in row order.
func (d *Dataset) CrateCoordinates() ([]float64, error) {
	boards, err := d.Column("board")
	if err != nil {
		return nil, err
	}
	chs, err := d.Column("ch")
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(boards))
	for i := range boards {
		xs[i] = float64(detector.CrateChannel(int(boards[i]), int(chs[i])))
	}
	return xs, nil
}
