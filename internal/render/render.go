// Package render draws the dashboard charts as PNG images with go-chart.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
)

// Default image size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

var (
	classColors = []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
		drawing.ColorFromHex("00cc96"),
		drawing.ColorFromHex("ab63fa"),
	}
	sexColors = map[string]drawing.Color{
		"male":   drawing.ColorFromHex("636efa"),
		"female": drawing.ColorFromHex("ef553b"),
	}
	otherSexColor    = drawing.ColorFromHex("7f7f7f")
	survivedColor    = drawing.ColorFromHex("00cc96")
	notSurvivedColor = drawing.ColorFromHex("ef553b")
)

// Renderer draws charts at a fixed size.
type Renderer struct {
	Width  int
	Height int
	Logger *logging.Logger
}

// New returns a renderer. Non-positive sizes fall back to the defaults.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height, Logger: logging.Global()}
}

// FileName is the PNG name used for a chart kind.
func FileName(kind explore.ChartKind) string {
	return string(kind) + ".png"
}

// RenderPNG writes c as a PNG. Charts with no data, and charts go-chart
// refuses to draw, are written as a blank white image of the same size.
// Only write errors are returned.
func (r *Renderer) RenderPNG(w io.Writer, c explore.Chart) error {
	var buf bytes.Buffer
	err := r.render(&buf, c)
	if err != nil {
		r.logger().Debug("chart render failed, writing blank image", "chart", c.Kind, "error", err)
		buf.Reset()
		if err := png.Encode(&buf, blank(r.Width, r.Height)); err != nil {
			return fmt.Errorf("failed to encode blank chart: %w", err)
		}
	}
	_, err = buf.WriteTo(w)
	return err
}

// Render returns c as PNG bytes.
func (r *Renderer) Render(c explore.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderPNG(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteAll writes every chart into dir as FileName(kind) and returns the paths.
func (r *Renderer) WriteAll(dir string, charts []explore.Chart) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, FileName(c.Kind))
		data, err := r.Render(c)
		if err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Renderer) logger() *logging.Logger {
	if r.Logger == nil {
		return logging.Global()
	}
	return r.Logger
}

// errNoData marks charts that are drawn blank on purpose.
var errNoData = fmt.Errorf("no data to plot")

func (r *Renderer) render(w io.Writer, c explore.Chart) error {
	if c.Empty() {
		return errNoData
	}
	switch c.Kind {
	case explore.ChartSurvivalByClass:
		return r.renderBars(w, c)
	case explore.ChartAgeDistribution:
		return r.renderHistogram(w, c)
	case explore.ChartFareVsAge:
		return r.renderScatter(w, c)
	default:
		return fmt.Errorf("unknown chart kind %q", c.Kind)
	}
}

func (r *Renderer) background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func (r *Renderer) renderBars(w io.Writer, c explore.Chart) error {
	bars := make([]chart.Value, 0, len(c.Classes))
	maxY := 1.0
	for i, cc := range c.Classes {
		col := classColors[i%len(classColors)]
		bars = append(bars, chart.Value{
			Label: "Class " + strconv.Itoa(cc.Pclass),
			Value: float64(cc.Survived),
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
		maxY = math.Max(maxY, float64(cc.Survived))
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   r.Width / (2*len(bars) + 1),
		Background: r.background(),
		YAxis: chart.YAxis{
			Name:  c.Encoding.Y,
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func (r *Renderer) renderHistogram(w io.Writer, c explore.Chart) error {
	h := c.Histogram
	edges := h.Edges
	maxY := 1.0
	series := make([]chart.Series, 0, len(h.Series))
	for _, s := range h.Series {
		// Step outline: each bin contributes its left and right edge at its count.
		xs := make([]float64, 0, 2*len(s.Counts))
		ys := make([]float64, 0, 2*len(s.Counts))
		for i, n := range s.Counts {
			xs = append(xs, edges[i], edges[i+1])
			ys = append(ys, float64(n), float64(n))
			maxY = math.Max(maxY, float64(n))
		}
		col, ok := sexColors[s.Name]
		if !ok {
			col = otherSexColor
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				FillColor:   col.WithAlpha(64),
			},
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: r.background(),
		XAxis: chart.XAxis{
			Name:  c.Encoding.X,
			Range: &chart.ContinuousRange{Min: edges[0], Max: edges[len(edges)-1]},
		},
		YAxis: chart.YAxis{
			Name:  c.Encoding.Y,
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func (r *Renderer) renderScatter(w io.Writer, c explore.Chart) error {
	var survivedX, survivedY, lostX, lostY []float64
	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := 1.0
	for _, p := range c.Points {
		if p.Survived == 1 {
			survivedX = append(survivedX, p.Age)
			survivedY = append(survivedY, p.Fare)
		} else {
			lostX = append(lostX, p.Age)
			lostY = append(lostY, p.Fare)
		}
		minX = math.Min(minX, p.Age)
		maxX = math.Max(maxX, p.Age)
		maxY = math.Max(maxY, p.Fare)
	}
	if maxX-minX < 1 {
		minX--
		maxX++
	}

	var series []chart.Series
	if len(lostX) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Not Survived", XValues: lostX, YValues: lostY, Style: pointStyle(notSurvivedColor),
		})
	}
	if len(survivedX) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Survived", XValues: survivedX, YValues: survivedY, Style: pointStyle(survivedColor),
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: r.background(),
		XAxis: chart.XAxis{
			Name:  c.Encoding.X,
			Range: &chart.ContinuousRange{Min: math.Max(0, minX), Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:  c.Encoding.Y,
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.05},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// blank returns a white image used when a chart cannot be drawn.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}
