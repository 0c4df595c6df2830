package seed

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/stats"
)

// EmployeeStore 是导入数据时需要的存储操作，由 repository.Repository 实现
type EmployeeStore interface {
	CreateEmployeesTable() error
	ReplaceEmployees(employees []domain.Employee, truncate bool) error
}

// ImportTable 把加载好的表写入数据库
func ImportTable(store EmployeeStore, t *domain.Table, truncate bool) error {
	if err := store.CreateEmployeesTable(); err != nil {
		return fmt.Errorf("无法创建 employees 表: %w", err)
	}

	employees := make([]domain.Employee, 0, t.Len())
	t.Each(func(e *domain.Employee) {
		employees = append(employees, *e)
	})

	if err := store.ReplaceEmployees(employees, truncate); err != nil {
		return fmt.Errorf("无法写入员工数据: %w", err)
	}

	slog.Info("员工数据导入完成", "rows", len(employees), "truncate", truncate)
	return nil
}

// WriteSummary 以表格形式输出指标卡和各部门人数
func WriteSummary(w io.Writer, t *domain.Table) {
	s := stats.Summarize(t)

	indicators := tablewriter.NewWriter(w)
	indicators.SetHeader([]string{"Indicator", "Value"})
	indicators.Append([]string{"Total Employees", strconv.Itoa(s.TotalEmployees)})
	indicators.Append([]string{"Present Employees", strconv.Itoa(s.PresentEmployees)})
	indicators.Append([]string{"Total Departments", strconv.Itoa(s.TotalDepartments)})
	indicators.Append([]string{"Mean Performance Score", strconv.FormatFloat(s.MeanPerfScore, 'f', 2, 64)})
	indicators.Append([]string{"Mean Emp Satisfaction", strconv.FormatFloat(s.MeanEmpSatisfaction, 'f', 2, 64)})
	indicators.Render()

	groups := tablewriter.NewWriter(w)
	groups.SetHeader([]string{"Department", "Employees"})
	for _, g := range s.PerDepartment {
		groups.Append([]string{g.Key, strconv.Itoa(g.Count)})
	}
	groups.SetFooter([]string{"Total", strconv.Itoa(s.TotalEmployees)})
	groups.Render()
}
