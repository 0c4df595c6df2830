package stats

import (
	"sort"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
)

type Group struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalEmployees      int     `json:"totalEmployees"`
	PresentEmployees    int     `json:"presentEmployees"`
	TotalDepartments    int     `json:"totalDepartments"`
	MeanPerfScore       float64 `json:"meanPerfScore"`
	MeanEmpSatisfaction float64 `json:"meanEmpSatisfaction"`
	PerDepartment       []Group `json:"perDepartment"`
	PerSex              []Group `json:"perSex"`
}

func TotalCount(t *domain.Table) int {
	return t.Len()
}

// ActiveCount 统计离职日期为空的员工
func ActiveCount(t *domain.Table) int {
	n := 0
	t.Each(func(e *domain.Employee) {
		if e.IsActive() {
			n++
		}
	})
	return n
}

func TerminatedCount(t *domain.Table) int {
	return t.Len() - ActiveCount(t)
}

// DistinctValues 返回分类列中出现过的取值，升序排列；空白单元格视为缺失，不计入
func DistinctValues(t *domain.Table, col domain.CategoryColumn) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	t.Each(func(e *domain.Employee) {
		v := e.Category(col)
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	})
	sort.Strings(values)
	return values
}

func DistinctCount(t *domain.Table, col domain.CategoryColumn) int {
	return len(DistinctValues(t, col))
}

func DistinctDepartmentCount(t *domain.Table) int {
	return DistinctCount(t, domain.ColumnDepartment)
}

// Mean 计算算术平均值，缺失值不参与计算；没有任何有效值时第二个返回值为 false
func Mean(t *domain.Table, col domain.NumericColumn) (float64, bool) {
	sum := 0.0
	n := 0
	t.Each(func(e *domain.Employee) {
		if v, ok := e.Number(col); ok {
			sum += v
			n++
		}
	})
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// GroupCount 按分类列分组计数，结果按键升序排列，空白的取值不成组
func GroupCount(t *domain.Table, col domain.CategoryColumn) []Group {
	counts := make(map[string]int)
	t.Each(func(e *domain.Employee) {
		if v := e.Category(col); v != "" {
			counts[v]++
		}
	})

	groups := make([]Group, 0, len(counts))
	for k, c := range counts {
		groups = append(groups, Group{Key: k, Count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// Values 按行序返回数值列中的非缺失值
func Values(t *domain.Table, col domain.NumericColumn) []float64 {
	values := make([]float64, 0, t.Len())
	t.Each(func(e *domain.Employee) {
		if v, ok := e.Number(col); ok {
			values = append(values, v)
		}
	})
	return values
}

func Summarize(t *domain.Table) Summary {
	meanPerf, _ := Mean(t, domain.ColumnPerfScoreID)
	meanSatisfaction, _ := Mean(t, domain.ColumnEmpSatisfaction)

	return Summary{
		TotalEmployees:      TotalCount(t),
		PresentEmployees:    ActiveCount(t),
		TotalDepartments:    DistinctDepartmentCount(t),
		MeanPerfScore:       meanPerf,
		MeanEmpSatisfaction: meanSatisfaction,
		PerDepartment:       GroupCount(t, domain.ColumnDepartment),
		PerSex:              GroupCount(t, domain.ColumnSex),
	}
}
