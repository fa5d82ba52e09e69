package charting

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"

	maxTicks = 8
	day      = 24 * time.Hour
)

// palette segue a ordem de cores padrão dos gráficos de linha do dashboard
var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
	drawing.ColorFromHex("fecb52"),
}

// Renderer desenha o gráfico de vendas por data
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 1024, Height: 480}
}

// ContentType retorna o media type do formato
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ParseFormat aceita "svg" e "png"
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatSVG, FormatPNG:
		return Format(value), nil
	default:
		return "", fmt.Errorf("formato de gráfico inválido %q", value)
	}
}

// Render desenha uma linha por região e uma linha vertical tracejada na data de corte
func (r *Renderer) Render(w io.Writer, data domain.ChartData, format Format) error {
	graph := r.Build(data)

	provider := chart.SVG
	if format == FormatPNG {
		provider = chart.PNG
	}

	if err := graph.Render(provider, w); err != nil {
		return errors.Wrap(err, "erro ao renderizar gráfico")
	}
	return nil
}

// Build monta o chart.Chart sem renderizar
func (r *Renderer) Build(data domain.ChartData) chart.Chart {
	minX, maxX := xBounds(data)
	minY, maxY := yBounds(data)

	series := make([]chart.Series, 0, len(data.Series)+1)
	for i, s := range data.Series {
		color := palette[i%len(palette)]
		series = append(series, chart.ContinuousSeries{
			Name:    s.Region,
			XValues: timesToFloats(s.Dates),
			YValues: s.Sales,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: color,
				DotWidth:    2,
				DotColor:    color,
			},
		})
	}

	cutoff := toFloat(data.CutoffDate)
	series = append(series, chart.ContinuousSeries{
		Name:    data.CutoffText,
		XValues: []float64{cutoff, cutoff},
		YValues: []float64{minY, maxY},
		Style: chart.Style{
			StrokeWidth:     2,
			StrokeColor:     chart.ColorRed,
			StrokeDashArray: []float64{6, 4},
		},
	})

	graph := chart.Chart{
		Title:      data.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  data.XLabel,
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
			Ticks: dateTicks(minX, maxX),
		},
		YAxis: chart.YAxis{
			Name:  data.YLabel,
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph
}

// xBounds inclui a data de corte e garante intervalo não vazio
func xBounds(data domain.ChartData) (float64, float64) {
	minX, maxX := toFloat(data.CutoffDate), toFloat(data.CutoffDate)
	for _, s := range data.Series {
		for _, d := range s.Dates {
			minX = math.Min(minX, toFloat(d))
			maxX = math.Max(maxX, toFloat(d))
		}
	}
	if minX == maxX {
		pad := day.Seconds()
		return minX - pad, maxX + pad
	}
	return minX, maxX
}

func yBounds(data domain.ChartData) (float64, float64) {
	minY, maxY := 0.0, 0.0
	for _, s := range data.Series {
		for _, v := range s.Sales {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if maxY <= minY {
		return minY, minY + 1
	}
	return minY, maxY * 1.05
}

func dateTicks(minX, maxX float64) []chart.Tick {
	step := (maxX - minX) / float64(maxTicks-1)
	if days := math.Ceil(step / day.Seconds()); days >= 1 {
		step = days * day.Seconds()
	}

	ticks := make([]chart.Tick, 0, maxTicks)
	for v := minX; v <= maxX+1; v += step {
		ticks = append(ticks, chart.Tick{
			Value: v,
			Label: time.Unix(int64(v), 0).UTC().Format(config.DateLayout),
		})
	}
	return ticks
}

func timesToFloats(dates []time.Time) []float64 {
	values := make([]float64, 0, len(dates))
	for _, d := range dates {
		values = append(values, toFloat(d))
	}
	return values
}

func toFloat(t time.Time) float64 {
	return float64(t.Unix())
}
