package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Employee_Name,EmpID,MarriedID,PerfScoreID,Salary,Position,DOB,Sex,DateofHire,DateofTermination,EmploymentStatus,Department,EmpSatisfaction
"Adinolfi, Wilson  K",10026,0,4,62506,Production Technician I,07/10/83,M ,7/5/2011,,Active,Production       ,5
"Ait Sidi, Karthikeyan",10084,1,3,104437,Sr. DBA,05/05/75,M ,3/30/2015,6/16/2016,Voluntarily Terminated,IT/IS,3
"Akinkuolie, Sarah",10196,1,3,64955,Production Technician II,09/19/88,F,7/5/2011,9/24/2012,Voluntarily Terminated,Production,
"Alagbe,Trina",10088,1,3,,Production Technician I,09/27/51,F,1/7/2008,,Active, Sales,4
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV), Options{})
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())
	assert.Len(t, table.Columns(), 13)

	first := table.At(0)
	assert.Equal(t, int64(10026), first.EmpID)
	assert.Equal(t, "Adinolfi, Wilson  K", first.Name)
	assert.Equal(t, "Production", first.Department)
	assert.Equal(t, "M", first.Sex)
	require.NotNil(t, first.DOB)
	assert.Equal(t, 1983, first.DOB.Year())
	require.NotNil(t, first.Age)
	assert.Equal(t, 2022-1983, *first.Age)
	assert.Nil(t, first.DateOfTermination)
	require.NotNil(t, first.Salary)
	assert.Equal(t, 62506.0, *first.Salary)

	second := table.At(1)
	require.NotNil(t, second.DateOfTermination)
	assert.Equal(t, time.Date(2016, time.June, 16, 0, 0, 0, 0, time.UTC), *second.DateOfTermination)

	third := table.At(2)
	assert.Nil(t, third.EmpSatisfaction)

	fourth := table.At(3)
	assert.Equal(t, "Sales", fourth.Department)
	assert.Nil(t, fourth.Salary)
	require.NotNil(t, fourth.Age)
	assert.Equal(t, 2022-1951, *fourth.Age)
}

func TestParseReferenceYear(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV), Options{ReferenceYear: 2000})
	require.NoError(t, err)

	first := table.At(0)
	require.NotNil(t, first.Age)
	assert.Equal(t, 17, *first.Age)
}

func TestParseDepartmentsAreTrimmed(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV), Options{})
	require.NoError(t, err)

	for i := 0; i < table.Len(); i++ {
		dep := table.At(i).Department
		assert.Equal(t, strings.TrimSpace(dep), dep)
	}
}

func TestParseMissingColumn(t *testing.T) {
	data := "Employee_Name,EmpID,Department\n\"Doe, Jane\",1,Sales\n"

	_, err := Parse(strings.NewReader(data), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseMalformedRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "salary", row: `"Doe, Jane",1,0,3,abc,Analyst,01/02/80,F,1/2/2010,,Active,Sales,4`},
		{name: "date", row: `"Doe, Jane",1,0,3,50000,Analyst,not-a-date,F,1/2/2010,,Active,Sales,4`},
		{name: "emp id", row: `"Doe, Jane",x,0,3,50000,Analyst,01/02/80,F,1/2/2010,,Active,Sales,4`},
	}

	header := strings.SplitN(sampleCSV, "\n", 2)[0]
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header+"\n"+tt.row+"\n"), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""), Options{})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	table, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTwoDigitHireAndTerminationDates(t *testing.T) {
	header := strings.SplitN(sampleCSV, "\n", 2)[0]
	row := `"Doe, Jane",1,0,3,50000,Analyst,01/02/80,F,7/5/11,6/16/16,Voluntarily Terminated,Sales,4`

	table, err := Parse(strings.NewReader(header+"\n"+row+"\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	e := table.At(0)
	require.NotNil(t, e.DOB)
	assert.Equal(t, 1980, e.DOB.Year())
	require.NotNil(t, e.DateOfHire)
	assert.Equal(t, time.Date(2011, time.July, 5, 0, 0, 0, 0, time.UTC), *e.DateOfHire)
	require.NotNil(t, e.DateOfTermination)
	assert.Equal(t, time.Date(2016, time.June, 16, 0, 0, 0, 0, time.UTC), *e.DateOfTermination)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "7/5/2011", want: time.Date(2011, time.July, 5, 0, 0, 0, 0, time.UTC)},
		{raw: "07/05/2011", want: time.Date(2011, time.July, 5, 0, 0, 0, 0, time.UTC)},
		{raw: "2011-07-05", want: time.Date(2011, time.July, 5, 0, 0, 0, 0, time.UTC)},
		{raw: "7/5/11", want: time.Date(2011, time.July, 5, 0, 0, 0, 0, time.UTC)},
		{raw: "12/31/99", want: time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseDate("13/45/99")
	assert.Error(t, err)
}

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "07/10/83", want: time.Date(1983, time.July, 10, 0, 0, 0, 0, time.UTC)},
		// 两位年份不滚动，05 也是 1905
		{raw: "1/2/05", want: time.Date(1905, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{raw: " 09/27/51 ", want: time.Date(1951, time.September, 27, 0, 0, 0, 0, time.UTC)},
		{raw: "09/27/1951", want: time.Date(1951, time.September, 27, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBirthDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseBirthDate("not-a-date")
	assert.ErrorContains(t, err, "not-a-date")
}
