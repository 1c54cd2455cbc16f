// Command tpcview is a small interactive viewer for the detector-noise
// figures: pick a TPC and a figure kind, the chart re-renders in place.
package main

import (
	"flag"
	"image"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/dataset"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/detector"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/logging"
	"github.com/justinjmueller/ICARUSNoiseAnalysis/src/plotting"
)

const (
	figureTPC        = "TPC planes"
	figureWirePlanes = "Wire geometry"
)

type uiState struct {
	ds          *dataset.Dataset
	chmap       *dataset.ChannelMap
	label       string
	metric      string
	metricLabel string

	tpc    int
	figure string

	imgCanvas *canvas.Image
}

func (st *uiState) render() image.Image {
	var (
		img image.Image
		err error
	)
	switch st.figure {
	case figureWirePlanes:
		img, err = plotting.WirePlanes(st.ds, st.chmap, st.metric, st.metricLabel, st.tpc)
	default:
		img, err = plotting.TPC([]*dataset.Dataset{st.ds}, []string{st.label}, st.metric, st.tpc)
	}
	if err != nil {
		logging.Errorf("render %s: %v", st.figure, err)
		return image.NewRGBA(image.Rect(0, 0, 800, 320))
	}
	return img
}

func (st *uiState) refresh() {
	st.imgCanvas.Image = st.render()
	st.imgCanvas.Refresh()
}

func main() {
	var (
		dataFlag        = flag.String("data", "", "per-channel metric CSV file")
		labelFlag       = flag.String("label", "data", "legend label for the dataset")
		chmapFlag       = flag.String("chmap", "", "channel map CSV (enables the wire geometry figure)")
		metricFlag      = flag.String("metric", "rawrms", "metric column to plot")
		metricLabelFlag = flag.String("metric-label", "RMS [ADC]", "colorbar label for the metric")
		logLevelFlag    = flag.String("loglevel", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()
	logging.SetLevel(*logLevelFlag)

	if *dataFlag == "" {
		logging.Errorf("no dataset: pass -data")
		os.Exit(1)
	}
	ds, err := dataset.Open(*dataFlag)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	var chmap *dataset.ChannelMap
	if *chmapFlag != "" {
		chmap, err = dataset.OpenChannelMap(*chmapFlag)
		if err != nil {
			logging.Errorf("%v", err)
			os.Exit(1)
		}
	}

	a := app.NewWithID("gov.fnal.icarus.tpcview")
	w := a.NewWindow("ICARUS Noise Viewer")
	w.Resize(fyne.NewSize(1200, 820))

	st := &uiState{
		ds:          ds,
		chmap:       chmap,
		label:       *labelFlag,
		metric:      *metricFlag,
		metricLabel: *metricLabelFlag,
		figure:      figureTPC,
	}
	st.imgCanvas = canvas.NewImageFromImage(st.render())
	st.imgCanvas.FillMode = canvas.ImageFillContain

	tpcNames := detector.TPCNames()
	tpcSelect := widget.NewSelect(tpcNames, func(sel string) {
		for i, n := range tpcNames {
			if n == sel {
				st.tpc = i
			}
		}
		st.refresh()
	})
	tpcSelect.Selected = tpcNames[0]

	figures := []string{figureTPC}
	if st.chmap != nil {
		figures = append(figures, figureWirePlanes)
	}
	figSelect := widget.NewSelect(figures, func(sel string) {
		st.figure = sel
		st.refresh()
	})
	figSelect.Selected = figureTPC

	top := container.NewHBox(
		widget.NewLabel("TPC:"), tpcSelect,
		widget.NewLabel("Figure:"), figSelect,
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, st.imgCanvas))
	w.ShowAndRun()
}
