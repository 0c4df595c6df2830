package dashboard

import (
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/chart"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/stats"
)

const (
	ControlAgePicker    = "dep-picker"
	ControlSalaryPicker = "dep-picker1"

	GraphAgeDistribution    = "age_distribution"
	GraphSalaryDistribution = "salary_distribution"
)

// Callback 描述一个下拉框到直方图的绑定
type Callback struct {
	Control string               `json:"control"`
	Output  string               `json:"output"`
	Column  domain.NumericColumn `json:"column"`
	Title   string               `json:"title"`
}

var callbackTable = []Callback{
	{Control: ControlAgePicker, Output: GraphAgeDistribution, Column: domain.ColumnAge, Title: "Age Distribution in Departments"},
	{Control: ControlSalaryPicker, Output: GraphSalaryDistribution, Column: domain.ColumnSalary, Title: "Salary Distribution in Departments"},
}

// render 按部门过滤后生成直方图。
// 不在已知部门集合中的值（包括空字符串）返回空直方图，不报错。
func (cb Callback) render(t *domain.Table, known map[string]struct{}, department string) chart.Figure {
	if _, ok := known[department]; !ok {
		return chart.Histogram(cb.Title, nil)
	}

	filtered := t.Filter(func(e *domain.Employee) bool {
		return e.Department == department
	})
	return chart.Histogram(cb.Title, stats.Values(filtered, cb.Column))
}
