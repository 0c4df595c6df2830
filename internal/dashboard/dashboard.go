package dashboard

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/stats"
)

var (
	ErrUnknownControl = errors.New("控件不存在")
	ErrUnknownGraph   = errors.New("图表不存在")
)

const (
	GraphTotalEmp   = "total_emp"
	GraphPresentEmp = "present_emp"
	GraphTotalDep   = "total_dep"
	GraphMeanPerf   = "mean_perf"
	GraphMeanEmp    = "mean_emp"
	GraphEmpPerDep  = "emp_per_dep"
	GraphEmpPerSex  = "emp_per_sex"
)

var indicatorOrder = []string{GraphTotalEmp, GraphPresentEmp, GraphTotalDep, GraphMeanPerf, GraphMeanEmp}

// Dashboard 在启动时构建一次，之后只读，handler 通过指针共享
type Dashboard struct {
	table       *domain.Table
	summary     stats.Summary
	departments []string
	known       map[string]struct{}
	figures     map[string]chart.Figure
	callbacks   map[string]Callback
	page        Page
}

func New(t *domain.Table) *Dashboard {
	d := &Dashboard{
		table:       t,
		summary:     stats.Summarize(t),
		departments: stats.DistinctValues(t, domain.ColumnDepartment),
		known:       make(map[string]struct{}),
		figures:     make(map[string]chart.Figure),
		callbacks:   make(map[string]Callback, len(callbackTable)),
	}

	for _, dep := range d.departments {
		d.known[dep] = struct{}{}
	}
	for _, cb := range callbackTable {
		d.callbacks[cb.Control] = cb
	}

	s := d.summary
	d.figures[GraphTotalEmp] = chart.Indicator("Total Employees", float64(s.TotalEmployees))
	d.figures[GraphPresentEmp] = chart.Indicator("Present Employees", float64(s.PresentEmployees))
	d.figures[GraphTotalDep] = chart.Indicator("Total Departments", float64(s.TotalDepartments))
	d.figures[GraphMeanPerf] = chart.Indicator("Mean Performance Score", s.MeanPerfScore)
	d.figures[GraphMeanEmp] = chart.Indicator("Mean Emp Satisfaction", s.MeanEmpSatisfaction)
	d.figures[GraphEmpPerDep] = chart.Bar("Total Employees per Department", s.PerDepartment)
	d.figures[GraphEmpPerSex] = chart.Pie("Employees by Gender", s.PerSex, chart.PiePalette)

	d.page = d.composePage(t.Len(), len(t.Columns()))
	return d
}

func (d *Dashboard) Page() Page {
	return d.page
}

func (d *Dashboard) Summary() stats.Summary {
	return d.summary
}

func (d *Dashboard) Departments() []string {
	out := make([]string, len(d.departments))
	copy(out, d.departments)
	return out
}

// Callbacks 返回注册表的副本，顺序与页面中一致
func (d *Dashboard) Callbacks() []Callback {
	out := make([]Callback, len(callbackTable))
	copy(out, callbackTable)
	return out
}

// Figure 返回页面初始状态下的某个图表
func (d *Dashboard) Figure(graphID string) (chart.Figure, error) {
	for _, p := range d.page.Panels() {
		if p.GraphID == graphID {
			return *p.Figure, nil
		}
	}
	return chart.Figure{}, fmt.Errorf("%w: %s", ErrUnknownGraph, graphID)
}

// Output 返回控件绑定的图表 ID
func (d *Dashboard) Output(controlID string) (string, error) {
	cb, ok := d.callbacks[controlID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownControl, controlID)
	}
	return cb.Output, nil
}

// Update 响应下拉框的变化，返回需要替换的图表 ID 和新图表
func (d *Dashboard) Update(controlID, value string) (string, chart.Figure, error) {
	cb, ok := d.callbacks[controlID]
	if !ok {
		return "", chart.Figure{}, fmt.Errorf("%w: %s", ErrUnknownControl, controlID)
	}
	return cb.Output, cb.render(d.table, d.known, value), nil
}

// IsKnownDepartment 判断值是否在启动时的部门集合中
func (d *Dashboard) IsKnownDepartment(value string) bool {
	_, ok := d.known[value]
	return ok
}
