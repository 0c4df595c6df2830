package chart

// Figure 与 Plotly 的 {data, layout} 结构一一对应，前端直接交给 Plotly.react 渲染
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode,omitempty"`
	Value  *float64  `json:"value,omitempty"`
	X      any       `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

type Layout struct {
	Title        Title  `json:"title"`
	PaperBGColor string `json:"paper_bgcolor"`
	Font         Font   `json:"font"`
	YAxis        *Axis  `json:"yaxis,omitempty"`
}

type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

type Font struct {
	Color string `json:"color"`
	Size  int    `json:"size,omitempty"`
}

type Axis struct {
	Range []float64 `json:"range,omitempty"`
}
