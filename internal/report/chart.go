package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Abbub1/schedsim/internal/schedule"
)

var errNoResults = errors.New("no results to chart")

// SaveChart draws average waiting and turnaround time per algorithm as a
// grouped bar chart. The image format follows the extension of path.
func SaveChart(path string, results []schedule.Result) error {
	if len(results) == 0 {
		return errNoResults
	}

	var (
		names       = make([]string, len(results))
		waits       = make(plotter.Values, len(results))
		turnarounds = make(plotter.Values, len(results))
		width       = vg.Points(20)
	)
	for i, res := range results {
		names[i] = string(res.Algorithm)
		waits[i] = res.AveWait
		turnarounds[i] = res.AveTurnaround
	}

	p := plot.New()
	p.Title.Text = "Scheduling comparison"
	p.Y.Label.Text = "Time units"
	p.X.Label.Text = "Algorithm"

	waitBars, err := plotter.NewBarChart(waits, width)
	if err != nil {
		return fmt.Errorf("building waiting time bars: %w", err)
	}
	waitBars.LineStyle.Width = vg.Length(0)
	waitBars.Color = plotutil.Color(0)
	waitBars.Offset = -width / 2

	turnaroundBars, err := plotter.NewBarChart(turnarounds, width)
	if err != nil {
		return fmt.Errorf("building turnaround time bars: %w", err)
	}
	turnaroundBars.LineStyle.Width = vg.Length(0)
	turnaroundBars.Color = plotutil.Color(1)
	turnaroundBars.Offset = width / 2

	p.Add(waitBars, turnaroundBars)
	p.Legend.Add("Average wait", waitBars)
	p.Legend.Add("Average turnaround", turnaroundBars)
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}
