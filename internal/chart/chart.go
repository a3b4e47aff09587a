package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dm/hubtrack/internal/engine"
	"github.com/dm/hubtrack/internal/format"
	"github.com/dm/hubtrack/internal/model"
)

const (
	chartWidth  = 1200
	chartHeight = 800

	// Past this many points, per-point time ticks overlap; switch to a
	// fixed 6-hour tick interval.
	coarseTickThreshold = 6
	coarseTickInterval  = 6 * time.Hour

	tickTimeFormat = "01/02 15:04"
)

// lineColor matches the matplotlib default blue the charts have always used.
var lineColor = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255}

// FileName returns the deterministic chart file name for a repository.
func FileName(namespace, repository string) string {
	return fmt.Sprintf("docker_hub_trends_%s_%s.png", namespace, repository)
}

// Render draws the pull-count trend chart for repo onto w as a PNG: a marked
// line over time, every point annotated with its comma-grouped value, time
// ticks on the x axis, and a y range padded 10% around the data. Axis ranges
// are always set explicitly so a single-sample series renders without error.
// samples must be sorted ascending by timestamp.
func Render(w io.Writer, samples []model.Sample, repository string) error {
	sub := engine.ForRepository(samples, repository)
	if len(sub) == 0 {
		return fmt.Errorf("no samples for repository %q", repository)
	}

	xs := make([]time.Time, len(sub))
	ys := make([]float64, len(sub))
	annotations := make([]gochart.Value2, len(sub))
	for i, s := range sub {
		xs[i] = s.Timestamp
		ys[i] = float64(s.PullCount)
		annotations[i] = gochart.Value2{
			XValue: gochart.TimeToFloat64(s.Timestamp),
			YValue: float64(s.PullCount),
			Label:  format.Number(s.PullCount),
		}
	}

	yMin, yMax := yRange(ys)
	xMin, xMax := xRange(xs)

	graph := gochart.Chart{
		Title:  fmt.Sprintf("%s/%s - Docker Hub Pull Count Trends", sub[0].Namespace, repository),
		Width:  chartWidth,
		Height: chartHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 25, Right: 25, Bottom: 25},
		},
		XAxis: gochart.XAxis{
			Name:           fmt.Sprintf("Time (%s)", sub[len(sub)-1].Timestamp.Format("MST")),
			ValueFormatter: gochart.TimeValueFormatterWithFormat(tickTimeFormat),
			Ticks:          timeTicks(xs),
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(xMin),
				Max: gochart.TimeToFloat64(xMax),
			},
		},
		YAxis: gochart.YAxis{
			Name: "Total Pull Count",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return format.Number(int64(f))
				}
				return ""
			},
			Range: &gochart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name: repository,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					DotColor:    lineColor,
					DotWidth:    5,
				},
				XValues: xs,
				YValues: ys,
			},
			gochart.AnnotationSeries{
				Annotations: annotations,
				Style: gochart.Style{
					StrokeColor: lineColor,
					FontSize:    10,
				},
			},
		},
	}

	return graph.Render(gochart.PNG, w)
}

// RenderFile writes the chart for repo into dir, overwriting any previous
// file, and returns the file path.
func RenderFile(dir string, samples []model.Sample, repository string) (string, error) {
	sub := engine.ForRepository(samples, repository)
	if len(sub) == 0 {
		return "", fmt.Errorf("no samples for repository %q", repository)
	}

	path := filepath.Join(dir, FileName(sub[0].Namespace, repository))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := Render(f, samples, repository); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return path, nil
}

// yRange returns the y axis bounds: the data range padded 10% on both sides.
// A flat or single-point series has no range to pad, so it falls back to 10%
// of the value itself, or ±1 around zero.
func yRange(ys []float64) (min, max float64) {
	min, max = ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}

	pad := (max - min) * 0.1
	if pad == 0 {
		pad = max * 0.1
	}
	if pad == 0 {
		pad = 1
	}
	return min - pad, max + pad
}

// xRange returns the time axis bounds. A degenerate span (single sample or
// identical timestamps) is widened to ±1 hour so the axis keeps a valid range.
func xRange(xs []time.Time) (min, max time.Time) {
	min, max = xs[0], xs[len(xs)-1]
	if !max.After(min) {
		return min.Add(-time.Hour), min.Add(time.Hour)
	}
	return min, max
}

// timeTicks builds the x axis ticks: one per point for short series, every 6
// hours across the span once the series passes coarseTickThreshold points.
// xs must be sorted ascending.
func timeTicks(xs []time.Time) []gochart.Tick {
	if len(xs) <= coarseTickThreshold {
		ticks := make([]gochart.Tick, 0, len(xs)+2)
		if len(xs) == 1 {
			// Single point: bracket it so the axis has more than one tick.
			ticks = append(ticks, tickAt(xs[0].Add(-time.Hour)))
		}
		for _, x := range xs {
			ticks = append(ticks, tickAt(x))
		}
		if len(xs) == 1 {
			ticks = append(ticks, tickAt(xs[0].Add(time.Hour)))
		}
		return ticks
	}

	first, last := xs[0], xs[len(xs)-1]
	var ticks []gochart.Tick
	for t := first.Truncate(coarseTickInterval); !t.After(last); t = t.Add(coarseTickInterval) {
		if t.Before(first) {
			continue
		}
		ticks = append(ticks, tickAt(t))
	}
	// Keep the last sample visible even when it falls between intervals.
	if len(ticks) == 0 || ticks[len(ticks)-1].Value < gochart.TimeToFloat64(last) {
		ticks = append(ticks, tickAt(last))
	}
	return ticks
}

func tickAt(t time.Time) gochart.Tick {
	return gochart.Tick{
		Value: gochart.TimeToFloat64(t),
		Label: t.Format(tickTimeFormat),
	}
}
