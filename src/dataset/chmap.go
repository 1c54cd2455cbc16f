package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// chmapColumns are the columns a channel map must provide: the logical
// channel id and the (z, y) endpoints of the physical wire.
var chmapColumns = []string{"channel_id", "z0", "y0", "z1", "y1"}

// ChannelMap associates logical channel ids with physical wire endpoint
// coordinates.
type ChannelMap struct {
	df dataframe.DataFrame
}

// NewChannelMap wraps an existing DataFrame, validating the required
// columns.
func NewChannelMap(df dataframe.DataFrame) (*ChannelMap, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("channel map: %w", df.Err)
	}
	names := map[string]bool{}
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, c := range chmapColumns {
		if !names[c] {
			return nil, fmt.Errorf("channel map: no column %q", c)
		}
	}
	return &ChannelMap{df: df}, nil
}

// ReadChannelMapCSV loads a channel map from CSV with a header row.
func ReadChannelMapCSV(r io.Reader) (*ChannelMap, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("read channel map csv: %w", df.Err)
	}
	return NewChannelMap(df)
}

// OpenChannelMap loads a channel map from a CSV file on disk.
func OpenChannelMap(path string) (*ChannelMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channel map: %w", err)
	}
	defer f.Close()
	m, err := ReadChannelMapCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Nrow returns the number of mapped wires.
func (m *ChannelMap) Nrow() int { return m.df.Nrow() }

// ForTPC masks the wires whose channel id belongs to a TPC, i.e. rows with
// channel_id/13824 == tpc, expressed as a half-open id range.
func (m *ChannelMap) ForTPC(tpc int) (*ChannelMap, error) {
	lo, hi := detector.ChannelRange(tpc)
	sub := m.df.Filter(
		dataframe.F{Colname: "channel_id", Comparator: series.GreaterEq, Comparando: lo},
	).Filter(
		dataframe.F{Colname: "channel_id", Comparator: series.Less, Comparando: hi},
	)
	if sub.Err != nil {
		return nil, fmt.Errorf("channel map tpc=%d: %w", tpc, sub.Err)
	}
	return &ChannelMap{df: sub}, nil
}

// WireSegment is one mapped wire with the metric value of its channel.
type WireSegment struct {
	ChannelID int
	Z0, Y0    float64
	Z1, Y1    float64
	Value     float64
}

// JoinMetric restricts the dataset to one wire plane, then inner-joins the
// channel map with the dataset's (channel_id, metric) pairs. Each matched
// channel id yields exactly one segment; unmatched wires are dropped.
func (m *ChannelMap) JoinMetric(ds *Dataset, metric string, plane int) ([]WireSegment, error) {
	for _, c := range []string{"channel_id", metric} {
		if !ds.Has(c) {
			return nil, fmt.Errorf("join: dataset has no column %q", c)
		}
	}
	sel, err := ds.SelectPlane(plane)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	vals := sel.df.Select([]string{"channel_id", metric})
	if vals.Err != nil {
		return nil, fmt.Errorf("join: select metric: %w", vals.Err)
	}
	joined := m.df.Select(chmapColumns).InnerJoin(vals, "channel_id")
	if joined.Err != nil {
		return nil, fmt.Errorf("join on channel_id: %w", joined.Err)
	}

	ids := joined.Col("channel_id").Float()
	z0 := joined.Col("z0").Float()
	y0 := joined.Col("y0").Float()
	z1 := joined.Col("z1").Float()
	y1 := joined.Col("y1").Float()
	vv := joined.Col(metric).Float()

	segs := make([]WireSegment, joined.Nrow())
	for i := range segs {
		segs[i] = WireSegment{
			ChannelID: int(ids[i]),
			Z0:        z0[i], Y0: y0[i],
			Z1: z1[i], Y1: y1[i],
			Value: vv[i],
		}
	}
	return segs, nil
}
