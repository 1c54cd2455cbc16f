// Package analysis aggregates per-channel metrics into the per-plane and
// per-flange rollups printed next to the figures.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// metricStats are the rollup statistics shared by every summary kind.
type metricStats struct {
	Channels       int
	Mean           float64
	Median         float64
	P95            float64
	Max            float64
	Outliers       int
	OutlierRatePct float64
}

// PlaneSummary aggregates one metric over the channels of a single wire
// plane of one TPC.
type PlaneSummary struct {
	TPC       int
	Plane     int
	PlaneName string
	metricStats
}

// FlangeSummary aggregates one metric over the channels behind a single
// flange (mini-crate).
type FlangeSummary struct {
	Flange string
	metricStats
}

// SummarizePlanes computes one summary per wire plane of the given TPC.
// Channels whose metric exceeds threshold count as outliers.
func SummarizePlanes(ds *dataset.Dataset, metric string, tpc int, threshold float64) ([]PlaneSummary, error) {
	out := make([]PlaneSummary, 0, detector.NPlanes)
	for plane := 0; plane < detector.NPlanes; plane++ {
		sel, err := ds.SelectTPCPlane(tpc, plane)
		if err != nil {
			return nil, fmt.Errorf("summarize tpc=%d plane=%d: %w", tpc, plane, err)
		}
		vals, err := sel.Column(metric)
		if err != nil {
			return nil, fmt.Errorf("summarize tpc=%d plane=%d: %w", tpc, plane, err)
		}
		out = append(out, PlaneSummary{
			TPC:         tpc,
			Plane:       plane,
			PlaneName:   detector.PlaneName(plane),
			metricStats: summarize(vals, threshold),
		})
	}
	return out, nil
}

// SummarizeFlanges computes one summary per distinct flange name found in
// the dataset, sorted by name.
func SummarizeFlanges(ds *dataset.Dataset, metric string, threshold float64) ([]FlangeSummary, error) {
	names, err := ds.Strings("flange")
	if err != nil {
		return nil, fmt.Errorf("summarize flanges: %w", err)
	}
	seen := map[string]bool{}
	uniq := []string{}
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Strings(uniq)

	out := make([]FlangeSummary, 0, len(uniq))
	for _, n := range uniq {
		sel, err := ds.SelectFlange(n)
		if err != nil {
			return nil, fmt.Errorf("summarize flange %q: %w", n, err)
		}
		vals, err := sel.Column(metric)
		if err != nil {
			return nil, fmt.Errorf("summarize flange %q: %w", n, err)
		}
		out = append(out, FlangeSummary{Flange: n, metricStats: summarize(vals, threshold)})
	}
	return out, nil
}

func summarize(vals []float64, threshold float64) metricStats {
	clean := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	st := metricStats{Channels: len(clean)}
	if len(clean) == 0 {
		return st
	}
	sort.Float64s(clean)
	st.Mean = stat.Mean(clean, nil)
	st.Median = stat.Quantile(0.5, stat.Empirical, clean, nil)
	st.P95 = stat.Quantile(0.95, stat.Empirical, clean, nil)
	st.Max = clean[len(clean)-1]
	for _, v := range clean {
		if v > threshold {
			st.Outliers++
		}
	}
	st.OutlierRatePct = 100 * float64(st.Outliers) / float64(len(clean))
	return st
}
