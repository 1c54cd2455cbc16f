package plotting

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// canvasFor allocates a pixel-sized raster canvas at the style's DPI.
func canvasFor(sty Style, wpx, hpx int) (*vgimg.Canvas, draw.Canvas) {
	dpi := sty.DPI
	if dpi <= 0 {
		dpi = 96
	}
	w := vg.Length(wpx) * vg.Inch / vg.Length(dpi)
	h := vg.Length(hpx) * vg.Inch / vg.Length(dpi)
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	return c, draw.New(c)
}

// subCanvas crops a canvas to the fractional rectangle [x0,x1]x[y0,y1],
// with (0,0) the bottom-left corner of the figure.
func subCanvas(dc draw.Canvas, x0, y0, x1, y1 float64) draw.Canvas {
	r := dc.Rectangle
	w := r.Max.X - r.Min.X
	h := r.Max.Y - r.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: r.Min.X + vg.Length(x0)*w, Y: r.Min.Y + vg.Length(y0)*h},
			Max: vg.Point{X: r.Min.X + vg.Length(x1)*w, Y: r.Min.Y + vg.Length(y1)*h},
		},
	}
}

// rowBand returns the fractional vertical band of one plane row, counted
// from the top of the figure.
func rowBand(row, nrows int) (bottom, top float64) {
	top = 1 - float64(row)/float64(nrows)
	return top - 1/float64(nrows), top
}

// constantTicks builds integer-labeled ticks from lo to hi inclusive at a
// fixed step.
func constantTicks(lo, hi, step float64) plot.ConstantTicks {
	var ts []plot.Tick
	for v := lo; v <= hi+step/2; v += step {
		ts = append(ts, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return plot.ConstantTicks(ts)
}
