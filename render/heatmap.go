package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/lakepath/lake"
	"github.com/katalvlaran/lakepath/mdp"
)

// ValueHeatmap renders v over the board as a standalone HTML page. Cells
// whose state is not in index are left empty.
func ValueHeatmap(w io.Writer, l *lake.Lake, v []float64, index map[mdp.State]int, title string) error {
	if l == nil {
		return fmt.Errorf("render: %w", mdp.ErrMDPNil)
	}

	xs := make([]string, l.Cols())
	for col := range xs {
		xs[col] = strconv.Itoa(col)
	}
	// Row 0 is drawn at the top.
	ys := make([]string, l.Rows())
	for row := range ys {
		ys[row] = strconv.Itoa(l.Rows() - 1 - row)
	}

	items := make([]opts.HeatMapData, 0, l.Rows()*l.Cols())
	var hi float64
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			s, _ := l.Cell(row, col)
			i, ok := index[s]
			if !ok || i >= len(v) {
				continue
			}
			if v[i] > hi {
				hi = v[i]
			}
			items = append(items, opts.HeatMapData{
				Name:  s.Kind.String(),
				Value: [3]interface{}{col, l.Rows() - 1 - row, v[i]},
			})
		}
	}
	if hi == 0 {
		hi = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#f7fbff", "#6baed6", "#08306b"},
			},
		}),
	)
	hm.SetXAxis(xs).AddSeries("v", items)

	page := components.NewPage()
	page.AddCharts(hm)

	return page.Render(w)
}
