package gxf_scan

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LengthStats summarizes a set of feature lengths.
type LengthStats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// NewLengthStats computes summary statistics over lengths. An empty input
// yields the zero value.
func NewLengthStats(lengths []float64) LengthStats {
	if len(lengths) == 0 {
		return LengthStats{}
	}
	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	return LengthStats{
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// WriteLengthHistogram renders a histogram of feature lengths to path;
// the image format follows the file extension (.svg, .png, ...).
func WriteLengthHistogram(lengths []float64, path string) error {
	if len(lengths) == 0 {
		return fmt.Errorf("no features to plot")
	}
	p := plot.New()
	p.Title.Text = "Feature Length Distribution"
	p.X.Label.Text = "Length (bp)"
	p.Y.Label.Text = "Features"

	vals := make(plotter.Values, len(lengths))
	copy(vals, lengths)
	h, err := plotter.NewHist(vals, 40)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
