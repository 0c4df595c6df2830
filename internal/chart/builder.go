package chart

import (
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/stats"
)

const (
	PaperBackground = "#000080"
	FontColor       = "yellow"
	FontSize        = 14
	MarkerColor     = "yellow"

	// 柱状图纵轴的最小上限
	MinBarRange = 220
)

// PiePalette 是饼图的两种颜色
var PiePalette = []string{"yellow", "green"}

var sexLabels = map[string]string{
	"F": "Females",
	"M": "Males",
}

func themedLayout(title string) Layout {
	return Layout{
		Title:        Title{Text: title, X: 0.5},
		PaperBGColor: PaperBackground,
		Font:         Font{Color: FontColor, Size: FontSize},
	}
}

func Indicator(title string, value float64) Figure {
	return Figure{
		Data: []Trace{{
			Type:  "indicator",
			Mode:  "number",
			Value: &value,
		}},
		Layout: themedLayout(title),
	}
}

func Bar(title string, groups []stats.Group) Figure {
	x := make([]string, 0, len(groups))
	y := make([]float64, 0, len(groups))
	upper := MinBarRange
	for _, g := range groups {
		x = append(x, g.Key)
		y = append(y, float64(g.Count))
		if g.Count > upper {
			upper = g.Count
		}
	}

	layout := themedLayout(title)
	layout.YAxis = &Axis{Range: []float64{0, float64(upper)}}

	return Figure{
		Data: []Trace{{
			Type:   "bar",
			X:      x,
			Y:      y,
			Marker: &Marker{Color: MarkerColor},
		}},
		Layout: layout,
	}
}

func Pie(title string, groups []stats.Group, colors []string) Figure {
	labels := make([]string, 0, len(groups))
	values := make([]float64, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, SexLabel(g.Key))
		values = append(values, float64(g.Count))
	}

	return Figure{
		Data: []Trace{{
			Type:   "pie",
			Labels: labels,
			Values: values,
			Marker: &Marker{Colors: colors},
		}},
		Layout: themedLayout(title),
	}
}

// Histogram 在 values 为空时生成空图，前端照常渲染
func Histogram(title string, values []float64) Figure {
	if values == nil {
		values = []float64{}
	}

	layout := themedLayout(title)
	// 直方图沿用 Plotly 默认字号
	layout.Font.Size = 0

	return Figure{
		Data: []Trace{{
			Type:   "histogram",
			X:      values,
			Marker: &Marker{Color: MarkerColor},
		}},
		Layout: layout,
	}
}

func SexLabel(key string) string {
	if label, ok := sexLabels[key]; ok {
		return label
	}
	return key
}
