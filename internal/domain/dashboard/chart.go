package dashboard

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	ChartTitle  = "Breed distribution (current filter)"
	chartWidth  = 640
	chartHeight = 480
)

// Chart es la representación JSON del pie; el SVG sale de RenderPie.
type Chart struct {
	Title  string  `json:"title"`
	Column string  `json:"column"`
	Slices []Slice `json:"slices"`
}

// RenderPie dibuja las slices como SVG con etiquetas "label (pct%)".
func RenderPie(w io.Writer, slices []Slice) error {
	if len(slices) == 0 {
		slices = placeholder()
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Label, s.Percent),
			Value: float64(s.Count),
		})
	}

	pie := chart.PieChart{
		Title:  ChartTitle,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return pie.Render(chart.SVG, w)
}
