package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTableCopiesRows(t *testing.T) {
	rows := []Employee{{EmpID: 1, Department: "Sales"}}
	table := NewTable(rows, []string{"EmpID"})

	rows[0].Department = "Changed"
	assert.Equal(t, "Sales", table.At(0).Department)

	cols := table.Columns()
	cols[0] = "Changed"
	assert.Equal(t, []string{"EmpID"}, table.Columns())
}

func TestFilter(t *testing.T) {
	table := NewTable([]Employee{
		{EmpID: 1, Department: "Production"},
		{EmpID: 2, Department: "Sales"},
		{EmpID: 3, Department: "Production"},
	}, nil)

	filtered := table.Filter(func(e *Employee) bool { return e.Department == "Production" })
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, int64(3), filtered.At(1).EmpID)
	assert.Equal(t, 3, table.Len())
}

func TestDeriveAgeAndNumber(t *testing.T) {
	dob := time.Date(1983, time.July, 10, 0, 0, 0, 0, time.UTC)
	e := Employee{DOB: &dob}
	e.DeriveAge(2022)

	v, ok := e.Number(ColumnAge)
	assert.True(t, ok)
	assert.Equal(t, 39.0, v)

	_, ok = e.Number(ColumnSalary)
	assert.False(t, ok)

	e.DOB = nil
	e.DeriveAge(2022)
	assert.Nil(t, e.Age)
	assert.True(t, e.IsActive())
}
