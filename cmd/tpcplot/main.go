// Command tpcplot renders the detector-noise figures headlessly and writes
// them as PNGs under an output directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/analysis"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/logging"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/plotting"
)

func main() {
	var (
		dataFlag        = flag.String("data", "", "comma-separated per-channel metric CSV files")
		labelsFlag      = flag.String("labels", "", "comma-separated legend labels, one per data file")
		chmapFlag       = flag.String("chmap", "", "channel map CSV (channel_id,z0,y0,z1,y1)")
		waveFlag        = flag.String("waveform", "", "waveform CSV, one ADC sample per row")
		waveTitleFlag   = flag.String("waveform-title", "Raw Waveform", "title for the waveform figure")
		metricFlag      = flag.String("metric", "rawrms", "metric column to plot")
		metricLabelFlag = flag.String("metric-label", "RMS [ADC]", "colorbar label for the metric")
		tpcFlag         = flag.Int("tpc", 0, "TPC index (0=EE 1=EW 2=WE 3=WW)")
		flangeFlag      = flag.String("flange", "", "flange name(s), comma separated (one, or one per data file)")
		outFlag         = flag.String("out", "plots", "output directory for PNG files")
		thresholdFlag   = flag.Float64("outlier-threshold", 8, "metric value above which a channel counts as an outlier")
		logLevelFlag    = flag.String("loglevel", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()
	logging.SetLevel(*logLevelFlag)

	if err := run(options{
		data:        splitList(*dataFlag),
		labels:      splitList(*labelsFlag),
		chmap:       *chmapFlag,
		waveform:    *waveFlag,
		waveTitle:   *waveTitleFlag,
		metric:      *metricFlag,
		metricLabel: *metricLabelFlag,
		tpc:         *tpcFlag,
		flanges:     splitList(*flangeFlag),
		outDir:      *outFlag,
		threshold:   *thresholdFlag,
	}); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	data        []string
	labels      []string
	chmap       string
	waveform    string
	waveTitle   string
	metric      string
	metricLabel string
	tpc         int
	flanges     []string
	outDir      string
	threshold   float64
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(opts options) error {
	if len(opts.data) == 0 && opts.waveform == "" {
		return fmt.Errorf("nothing to plot: pass -data and/or -waveform")
	}
	if len(opts.data) > 0 && len(opts.labels) != len(opts.data) {
		return fmt.Errorf("%d labels for %d data files", len(opts.labels), len(opts.data))
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	var datasets []*dataset.Dataset
	for _, path := range opts.data {
		ds, err := dataset.Open(path)
		if err != nil {
			return err
		}
		logging.Debugf("loaded %s: %d rows", path, ds.Nrow())
		datasets = append(datasets, ds)
	}

	var chmap *dataset.ChannelMap
	if opts.chmap != "" {
		m, err := dataset.OpenChannelMap(opts.chmap)
		if err != nil {
			return err
		}
		logging.Debugf("loaded channel map %s: %d wires", opts.chmap, m.Nrow())
		chmap = m
	}

	type figure struct {
		name string
		fn   func() (image.Image, error)
	}
	var toRender []figure
	if len(datasets) > 0 {
		toRender = append(toRender, figure{"tpc.png", func() (image.Image, error) {
			return plotting.TPC(datasets, opts.labels, opts.metric, opts.tpc)
		}})
		if len(opts.flanges) > 0 {
			toRender = append(toRender, figure{"crate.png", func() (image.Image, error) {
				return plotting.Crate(datasets, opts.labels, opts.metric, opts.flanges)
			}})
		}
		if chmap != nil {
			toRender = append(toRender, figure{"wire_planes.png", func() (image.Image, error) {
				return plotting.WirePlanes(datasets[0], chmap, opts.metric, opts.metricLabel, opts.tpc)
			}})
		}
	}
	if opts.waveform != "" {
		toRender = append(toRender, figure{"waveform.png", func() (image.Image, error) {
			samples, err := dataset.OpenWaveform(opts.waveform)
			if err != nil {
				return nil, err
			}
			return plotting.Waveform(samples, opts.waveTitle)
		}})
	}

	for _, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(opts.outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logging.Infof("wrote %s", outPath)
	}

	if len(datasets) > 0 {
		printSummaries(datasets[0], opts)
	}
	return nil
}

func printSummaries(ds *dataset.Dataset, opts options) {
	sums, err := analysis.SummarizePlanes(ds, opts.metric, opts.tpc, opts.threshold)
	if err != nil {
		logging.Warnf("plane summaries: %v", err)
		return
	}
	name, _ := detector.TPCName(opts.tpc)
	fmt.Printf("TPC %s %s summary (outlier threshold %.2f):\n", name, opts.metric, opts.threshold)
	for _, s := range sums {
		fmt.Printf("  %-12s channels=%-5d mean=%-7.3f median=%-7.3f p95=%-7.3f max=%-7.3f outliers=%d (%.1f%%)\n",
			s.PlaneName, s.Channels, s.Mean, s.Median, s.P95, s.Max, s.Outliers, s.OutlierRatePct)
	}
}
