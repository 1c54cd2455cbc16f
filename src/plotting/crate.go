package plotting

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// Crate renders the metric channel-to-channel across one mini-crate, with
// x = 64*board + ch. A single component name applies to every dataset; a
// slice with one name per dataset compares components against each other.
func Crate(datasets []*dataset.Dataset, labels []string, metric string, components []string) (image.Image, error) {
	if len(datasets) == 0 {
		return nil, errors.New("crate figure: no datasets")
	}
	if len(labels) != len(datasets) {
		return nil, fmt.Errorf("crate figure: %d labels for %d datasets", len(labels), len(datasets))
	}
	if len(components) != 1 && len(components) != len(datasets) {
		return nil, fmt.Errorf("crate figure: %d components for %d datasets", len(components), len(datasets))
	}

	title := components[0]
	if len(components) == len(datasets) && len(datasets) > 1 {
		title = strings.Join(components, " vs. ")
	}

	sty := LoadStyle()
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Channel Number"
	p.Y.Label.Text = "RMS [ADC]"

	for di, d := range datasets {
		comp := components[0]
		if len(components) == len(datasets) {
			comp = components[di]
		}
		sel, err := d.SelectFlange(comp)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
		}
		xs, err := sel.CrateCoordinates()
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
		}
		ys, err := sel.Column(metric)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
		}

		pts := make(plotter.XYs, 0, len(xs))
		for i := range xs {
			if math.IsNaN(ys[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter %s %s: %w", labels[di], comp, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(di)
		sc.GlyphStyle.Radius = vg.Points(sty.GlyphRadius)
		p.Add(sc)
		p.Legend.Add(labels[di], sc)
	}

	p.X.Min, p.X.Max = 0, float64(detector.ChannelsPerCrate)
	p.Y.Min, p.Y.Max = sty.MetricMin, sty.MetricMax
	p.X.Tick.Marker = constantTicks(0, float64(detector.ChannelsPerCrate), float64(detector.ChannelsPerBoard))
	p.Legend.Top = true

	img, dc := canvasFor(sty, sty.CrateWidth, sty.CrateHeight)
	p.Draw(dc)
	return img.Image(), nil
}
