// Package plotting renders the detector-channel figures: per-TPC scatter
// and histogram grids, per-crate scatters, wire-plane segment views, and
// raw waveform traces. Every figure function returns an in-memory image.
package plotting

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/logging"
)

// Style carries the figure cosmetics normally read from plot_style.yaml.
type Style struct {
	DPI int

	TPCWidth, TPCHeight     int
	CrateWidth, CrateHeight int
	WireWidth, WireHeight   int
	WaveWidth, WaveHeight   int

	GlyphRadius float64
	HistBins    int

	MetricMin, MetricMax     float64
	WaveformMin, WaveformMax float64
}

// DefaultStyle returns the compiled-in cosmetics used when no
// plot_style.yaml is found.
func DefaultStyle() Style {
	return Style{
		DPI:         96,
		TPCWidth:    1560,
		TPCHeight:   960,
		CrateWidth:  640,
		CrateHeight: 480,
		WireWidth:   1400,
		WireHeight:  840,
		WaveWidth:   1120,
		WaveHeight:  480,
		GlyphRadius: 1.5,
		HistBins:    50,
		MetricMin:   0,
		MetricMax:   10,
		WaveformMin: -20,
		WaveformMax: 20,
	}
}

// LoadStyle looks up plot_style.yaml by name at call time (current
// directory first, then the user config dir) and overlays it on the
// defaults. A missing file is not an error.
func LoadStyle() Style {
	def := DefaultStyle()
	v := viper.New()
	v.SetConfigName("plot_style")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "icarusnoise"))
	}

	v.SetDefault("dpi", def.DPI)
	v.SetDefault("figure.tpc.width", def.TPCWidth)
	v.SetDefault("figure.tpc.height", def.TPCHeight)
	v.SetDefault("figure.crate.width", def.CrateWidth)
	v.SetDefault("figure.crate.height", def.CrateHeight)
	v.SetDefault("figure.wire.width", def.WireWidth)
	v.SetDefault("figure.wire.height", def.WireHeight)
	v.SetDefault("figure.waveform.width", def.WaveWidth)
	v.SetDefault("figure.waveform.height", def.WaveHeight)
	v.SetDefault("scatter.glyph_radius", def.GlyphRadius)
	v.SetDefault("histogram.bins", def.HistBins)
	v.SetDefault("metric.min", def.MetricMin)
	v.SetDefault("metric.max", def.MetricMax)
	v.SetDefault("waveform.min", def.WaveformMin)
	v.SetDefault("waveform.max", def.WaveformMax)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logging.Warnf("plot_style.yaml: %v (using defaults)", err)
		}
	}

	return Style{
		DPI:         v.GetInt("dpi"),
		TPCWidth:    v.GetInt("figure.tpc.width"),
		TPCHeight:   v.GetInt("figure.tpc.height"),
		CrateWidth:  v.GetInt("figure.crate.width"),
		CrateHeight: v.GetInt("figure.crate.height"),
		WireWidth:   v.GetInt("figure.wire.width"),
		WireHeight:  v.GetInt("figure.wire.height"),
		WaveWidth:   v.GetInt("figure.waveform.width"),
		WaveHeight:  v.GetInt("figure.waveform.height"),
		GlyphRadius: v.GetFloat64("scatter.glyph_radius"),
		HistBins:    v.GetInt("histogram.bins"),
		MetricMin:   v.GetFloat64("metric.min"),
		MetricMax:   v.GetFloat64("metric.max"),
		WaveformMin: v.GetFloat64("waveform.min"),
		WaveformMax: v.GetFloat64("waveform.max"),
	}
}
