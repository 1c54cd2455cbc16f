package plotting

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
)

// Waveform renders a single raw waveform trace over its full time range.
// Traces are assumed to span 4096 ticks; shorter traces draw over the same
// fixed axis.
func Waveform(samples []float64, title string) (image.Image, error) {
	if len(samples) == 0 {
		return nil, errors.New("waveform: empty trace")
	}
	sty := LoadStyle()

	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i)
	}
	xmax := float64(detector.WaveformTicks)
	if float64(len(samples)) > xmax {
		xmax = float64(len(samples))
	}

	ch := chart.Chart{
		Title:      title,
		Width:      sty.WaveWidth,
		Height:     sty.WaveHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  "Time [ticks]",
			Range: &chart.ContinuousRange{Min: 0, Max: xmax},
		},
		YAxis: chart.YAxis{
			Name:  "Waveform Height [ADC]",
			Range: &chart.ContinuousRange{Min: sty.WaveformMin, Max: sty.WaveformMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: samples,
				Style:   chart.Style{StrokeWidth: 1, StrokeColor: chart.ColorBlue},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("waveform render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("waveform decode: %w", err)
	}
	return img, nil
}
