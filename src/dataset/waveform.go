package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadWaveformCSV loads a raw waveform trace from headerless CSV. A file
// with one sample per row is read down its first column; a file with a
// single row is read across its columns.
func ReadWaveformCSV(r io.Reader) ([]float64, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read waveform csv: %w", df.Err)
	}
	names := df.Names()
	if len(names) == 0 || df.Nrow() == 0 {
		return nil, fmt.Errorf("read waveform csv: empty trace")
	}
	if df.Nrow() == 1 && len(names) > 1 {
		out := make([]float64, 0, len(names))
		for _, n := range names {
			out = append(out, df.Col(n).Float()...)
		}
		return out, nil
	}
	return df.Col(names[0]).Float(), nil
}

// OpenWaveform loads a waveform trace from a CSV file on disk.
func OpenWaveform(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open waveform: %w", err)
	}
	defer f.Close()
	w, err := ReadWaveformCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}
