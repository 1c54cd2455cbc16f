package plotting

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// wireSegments draws mapped wires at their physical endpoints, each colored
// by its metric value through the shared color map.
type wireSegments struct {
	segs  []dataset.WireSegment
	cmap  palette.ColorMap
	width vg.Length
}

func (w *wireSegments) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, s := range w.segs {
		v := s.Value
		if v < w.cmap.Min() {
			v = w.cmap.Min()
		}
		if v > w.cmap.Max() {
			v = w.cmap.Max()
		}
		col, err := w.cmap.At(v)
		if err != nil {
			continue
		}
		sty := draw.LineStyle{Color: col, Width: w.width}
		c.StrokeLine2(sty, trX(s.Z0), trY(s.Y0), trX(s.Z1), trY(s.Y1))
	}
}

// DataRange reports the fixed wire-plane face envelope so empty joins still
// draw the full detector face.
func (w *wireSegments) DataRange() (xmin, xmax, ymin, ymax float64) {
	return detector.ZMin, detector.ZMax, detector.YMin, detector.YMax
}

// WirePlanes renders each wire of one TPC at its physical location, colored
// by the metric, one panel per plane with a shared vertical colorbar.
func WirePlanes(ds *dataset.Dataset, chmap *dataset.ChannelMap, metric, metricLabel string, tpc int) (image.Image, error) {
	if ds == nil {
		return nil, errors.New("wire planes: no dataset")
	}
	if chmap == nil {
		return nil, errors.New("wire planes: no channel map")
	}
	tpcName, err := detector.TPCName(tpc)
	if err != nil {
		return nil, fmt.Errorf("wire planes: %w", err)
	}

	sty := LoadStyle()
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(sty.MetricMin)
	cmap.SetMax(sty.MetricMax)

	sub, err := chmap.ForTPC(tpc)
	if err != nil {
		return nil, fmt.Errorf("wire planes: %w", err)
	}

	img, dc := canvasFor(sty, sty.WireWidth, sty.WireHeight)
	for plane := 0; plane < detector.NPlanes; plane++ {
		segs, err := sub.JoinMetric(ds, metric, plane)
		if err != nil {
			return nil, fmt.Errorf("wire planes %s: %w", detector.PlaneName(plane), err)
		}

		p := plot.New()
		p.Title.Text = detector.PlaneName(plane)
		p.X.Label.Text = "Z Position [cm]"
		p.Y.Label.Text = "Y Position [cm]"
		p.Add(&wireSegments{segs: segs, cmap: cmap, width: vg.Points(1)})
		p.X.Min, p.X.Max = detector.ZMin, detector.ZMax
		p.Y.Min, p.Y.Max = detector.YMin, detector.YMax

		bot, top := rowBand(plane, detector.NPlanes)
		p.Draw(subCanvas(dc, 0, bot, 0.9, top))
	}

	// Shared colorbar along the right edge.
	cb := plot.New()
	cb.HideX()
	cb.Y.Label.Text = metricLabel
	bar := &plotter.ColorBar{ColorMap: cmap}
	bar.Vertical = true
	cb.Add(bar)
	cb.Draw(subCanvas(dc, 0.9, 0.05, 1, 0.95))

	base := metricLabel
	if i := strings.Index(base, " ["); i >= 0 {
		base = base[:i]
	}
	return Caption(img.Image(), fmt.Sprintf("%s by Plane for %s", base, tpcName)), nil
}
