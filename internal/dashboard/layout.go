package dashboard

import (
	"fmt"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
)

const (
	PageTitle        = "HR DATASET ANALYSIS"
	DatasetURL       = "https://www.kaggle.com/datasets/rhuebner/human-resources-data-set"
	DefaultSelection = "Production"
)

type Page struct {
	Title       string      `json:"title"`
	Description Description `json:"description"`
	Rows        []Row       `json:"rows"`
}

type Description struct {
	Text       string `json:"text"`
	SourceName string `json:"sourceName"`
	SourceURL  string `json:"sourceUrl"`
	Shape      string `json:"shape"`
}

type Row struct {
	Panels []Panel `json:"panels"`
}

type Panel struct {
	GraphID string        `json:"graphId"`
	Class   string        `json:"class"`
	Width   string        `json:"width"`
	Height  string        `json:"height"`
	Figure  *chart.Figure `json:"figure"`
	Control *Dropdown     `json:"control,omitempty"`
}

type Dropdown struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
	Value   string   `json:"value"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Panels 按行优先顺序返回所有图表面板
func (p *Page) Panels() []Panel {
	panels := make([]Panel, 0)
	for _, row := range p.Rows {
		panels = append(panels, row.Panels...)
	}
	return panels
}

func departmentDropdown(id string, departments []string) *Dropdown {
	options := make([]Option, 0, len(departments))
	value := ""
	for _, dep := range departments {
		options = append(options, Option{Label: dep, Value: dep})
		if dep == DefaultSelection {
			value = dep
		}
	}
	if value == "" && len(departments) > 0 {
		value = departments[0]
	}
	return &Dropdown{ID: id, Options: options, Value: value}
}

func indicatorPanel(id string, fig chart.Figure) Panel {
	return Panel{GraphID: id, Class: "two columns", Width: "30vh", Height: "30vh", Figure: &fig}
}

// composePage 只负责排列，所有图表在调用前已经生成
func (d *Dashboard) composePage(rows, columns int) Page {
	staticPanel := func(id, class, width string) Panel {
		fig := d.figures[id]
		return Panel{GraphID: id, Class: class, Width: width, Height: "70vh", Figure: &fig}
	}

	filterPanel := func(controlID, class, width string) Panel {
		cb := d.callbacks[controlID]
		control := departmentDropdown(controlID, d.departments)
		fig := cb.render(d.table, d.known, control.Value)
		return Panel{GraphID: cb.Output, Class: class, Width: width, Height: "70vh", Figure: &fig, Control: control}
	}

	indicators := make([]Panel, 0, len(indicatorOrder))
	for _, id := range indicatorOrder {
		indicators = append(indicators, indicatorPanel(id, d.figures[id]))
	}

	return Page{
		Title: PageTitle,
		Description: Description{
			Text:       "This dashboard presents the analysis of the HR Dataset. The dataset is taken from",
			SourceName: "Kaggle",
			SourceURL:  DatasetURL,
			Shape:      fmt.Sprintf("It contains %d rows and %d columns.", rows, columns),
		},
		Rows: []Row{
			{Panels: indicators},
			{Panels: []Panel{
				staticPanel(GraphEmpPerDep, "five columns", "90vh"),
				staticPanel(GraphEmpPerSex, "six columns", "85vh"),
			}},
			{Panels: []Panel{
				filterPanel(ControlAgePicker, "five columns", "90vh"),
				filterPanel(ControlSalaryPicker, "six columns", "85vh"),
			}},
		},
	}
}
