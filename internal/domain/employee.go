package domain

import (
	"time"
)

type NumericColumn string

const (
	ColumnAge             NumericColumn = "age"
	ColumnSalary          NumericColumn = "salary"
	ColumnPerfScoreID     NumericColumn = "perf_score_id"
	ColumnEmpSatisfaction NumericColumn = "emp_satisfaction"
)

type CategoryColumn string

const (
	ColumnDepartment       CategoryColumn = "department"
	ColumnSex              CategoryColumn = "sex"
	ColumnEmploymentStatus CategoryColumn = "employment_status"
	ColumnPosition         CategoryColumn = "position"
)

type Employee struct {
	EmpID             int64      `json:"empId"`
	Name              string     `json:"name"`
	Department        string     `json:"department"`
	Position          string     `json:"position"`
	EmploymentStatus  string     `json:"employmentStatus"`
	Sex               string     `json:"sex"`
	DOB               *time.Time `json:"dob"`
	DateOfHire        *time.Time `json:"dateOfHire"`
	DateOfTermination *time.Time `json:"dateOfTermination"` // nil 表示仍在职
	PerfScoreID       *float64   `json:"perfScoreId"`
	EmpSatisfaction   *float64   `json:"empSatisfaction"`
	Salary            *float64   `json:"salary"`
	Age               *int       `json:"age"`
}

func (e *Employee) IsActive() bool {
	return e.DateOfTermination == nil
}

// Number 返回数值列的值，缺失时第二个返回值为 false
func (e *Employee) Number(col NumericColumn) (float64, bool) {
	switch col {
	case ColumnAge:
		if e.Age == nil {
			return 0, false
		}
		return float64(*e.Age), true
	case ColumnSalary:
		return deref(e.Salary)
	case ColumnPerfScoreID:
		return deref(e.PerfScoreID)
	case ColumnEmpSatisfaction:
		return deref(e.EmpSatisfaction)
	}
	return 0, false
}

func (e *Employee) Category(col CategoryColumn) string {
	switch col {
	case ColumnDepartment:
		return e.Department
	case ColumnSex:
		return e.Sex
	case ColumnEmploymentStatus:
		return e.EmploymentStatus
	case ColumnPosition:
		return e.Position
	}
	return ""
}

// DeriveAge 按固定参考年份计算年龄
func (e *Employee) DeriveAge(referenceYear int) {
	if e.DOB == nil {
		e.Age = nil
		return
	}
	age := referenceYear - e.DOB.Year()
	e.Age = &age
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
