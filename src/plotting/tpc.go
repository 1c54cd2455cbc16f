package plotting

import (
	"errors"
	"fmt"
	"image"
	"math"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// TPC renders the per-plane view of one TPC: for each wire plane a wide
// scatter of the metric versus channel id and a narrow step histogram of
// the same values, overlaying every dataset.
func TPC(datasets []*dataset.Dataset, labels []string, metric string, tpc int) (image.Image, error) {
	if len(datasets) == 0 {
		return nil, errors.New("tpc figure: no datasets")
	}
	if len(labels) != len(datasets) {
		return nil, fmt.Errorf("tpc figure: %d labels for %d datasets", len(labels), len(datasets))
	}
	if tpc < 0 || tpc >= detector.NTPC {
		return nil, fmt.Errorf("tpc figure: tpc index %d out of range [0,%d)", tpc, detector.NTPC)
	}
	sty := LoadStyle()
	img, dc := canvasFor(sty, sty.TPCWidth, sty.TPCHeight)

	for plane := 0; plane < detector.NPlanes; plane++ {
		sp := plot.New()
		sp.Title.Text = detector.PlaneName(plane)
		sp.X.Label.Text = "Channel ID"
		sp.Y.Label.Text = "RMS [ADC]"

		hp := hplot.New()
		hp.X.Label.Text = "RMS [ADC]"
		hp.Y.Label.Text = "Entries"

		for di, d := range datasets {
			sel, err := d.SelectTPCPlane(tpc, plane)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
			}
			ids, err := sel.Column("channel_id")
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
			}
			vals, err := sel.Column(metric)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", labels[di], err)
			}

			pts := make(plotter.XYs, 0, len(ids))
			for i := range ids {
				if math.IsNaN(vals[i]) {
					continue
				}
				pts = append(pts, plotter.XY{X: ids[i], Y: vals[i]})
			}
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("scatter %s %s: %w", labels[di], detector.PlaneName(plane), err)
			}
			sc.GlyphStyle.Color = plotutil.Color(di)
			sc.GlyphStyle.Radius = vg.Points(sty.GlyphRadius)
			sp.Add(sc)

			h1 := hbook.NewH1D(sty.HistBins, sty.MetricMin, sty.MetricMax)
			for _, p := range pts {
				h1.Fill(p.Y, 1)
			}
			hh := hplot.NewH1D(h1)
			hh.FillColor = nil
			hh.LineStyle.Color = plotutil.Color(di)
			hh.LineStyle.Width = vg.Points(1)
			hp.Add(hh)
			hp.Legend.Add(labels[di], hh)
		}

		xlo := float64(detector.PlaneOffset(tpc, plane))
		xhi := xlo + float64(detector.PlaneChannels(plane))
		sp.X.Min, sp.X.Max = xlo, xhi
		sp.Y.Min, sp.Y.Max = sty.MetricMin, sty.MetricMax
		sp.X.Tick.Marker = constantTicks(xlo, xhi, float64(detector.PlaneDivision(plane)))

		hp.X.Min, hp.X.Max = sty.MetricMin, sty.MetricMax
		hp.Y.Min = 0
		if !(hp.Y.Max > hp.Y.Min) {
			hp.Y.Max = hp.Y.Min + 1
		}
		hp.Legend.Top = true

		bot, top := rowBand(plane, detector.NPlanes)
		sp.Draw(subCanvas(dc, 0, bot, 0.75, top))
		hp.Draw(subCanvas(dc, 0.75, bot, 1, top))
	}
	return img.Image(), nil
}
