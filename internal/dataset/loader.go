package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
)

var (
	ErrMissingColumn = errors.New("缺少必需的列")
	ErrMalformedRow  = errors.New("数据行格式错误")
)

// 源文件中会用到的列
const (
	colName              = "Employee_Name"
	colEmpID             = "EmpID"
	colDepartment        = "Department"
	colDOB               = "DOB"
	colDateOfHire        = "DateofHire"
	colDateOfTermination = "DateofTermination"
	colSex               = "Sex"
	colPerfScoreID       = "PerfScoreID"
	colEmpSatisfaction   = "EmpSatisfaction"
	colSalary            = "Salary"
	colPosition          = "Position"
	colEmploymentStatus  = "EmploymentStatus"
)

var RequiredColumns = []string{
	colName, colEmpID, colDepartment, colDOB, colDateOfHire, colDateOfTermination,
	colSex, colPerfScoreID, colEmpSatisfaction, colSalary, colPosition, colEmploymentStatus,
}

const DefaultReferenceYear = 2022

type Options struct {
	ReferenceYear int
}

func LoadFile(path string, opts Options) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开数据文件: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

func Parse(r io.Reader, opts Options) (*domain.Table, error) {
	if opts.ReferenceYear == 0 {
		opts.ReferenceYear = DefaultReferenceYear
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("无法读取表头: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	rows := make([]domain.Employee, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: 第 %d 行: %v", ErrMalformedRow, line, err)
		}

		p := rowParser{record: record, index: index, line: line}
		e := p.employee()
		if p.err != nil {
			return nil, p.err
		}
		e.DeriveAge(opts.ReferenceYear)
		rows = append(rows, e)
	}

	return domain.NewTable(rows, headers), nil
}

// rowParser 记录第一个出现的错误，后续的读取直接返回零值
type rowParser struct {
	record []string
	index  map[string]int
	line   int
	err    error
}

func (p *rowParser) employee() domain.Employee {
	return domain.Employee{
		EmpID:             p.integer(colEmpID),
		Name:              p.text(colName),
		Department:        p.text(colDepartment),
		Position:          p.text(colPosition),
		EmploymentStatus:  p.text(colEmploymentStatus),
		Sex:               p.text(colSex),
		DOB:               p.date(colDOB, ParseBirthDate),
		DateOfHire:        p.date(colDateOfHire, ParseDate),
		DateOfTermination: p.date(colDateOfTermination, ParseDate),
		PerfScoreID:       p.number(colPerfScoreID),
		EmpSatisfaction:   p.number(colEmpSatisfaction),
		Salary:            p.number(colSalary),
	}
}

func (p *rowParser) text(col string) string {
	i := p.index[col]
	if i >= len(p.record) {
		return ""
	}
	return strings.TrimSpace(p.record[i])
}

func (p *rowParser) fail(col, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: 第 %d 行 %s 列的值 %q: %v", ErrMalformedRow, p.line, col, raw, err)
	}
}

func (p *rowParser) integer(col string) int64 {
	raw := p.text(col)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(col, raw, err)
	}
	return v
}

func (p *rowParser) number(col string) *float64 {
	raw := p.text(col)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(col, raw, err)
		return nil
	}
	return &v
}

func (p *rowParser) date(col string, parse func(string) (time.Time, error)) *time.Time {
	raw := p.text(col)
	if raw == "" {
		return nil
	}
	t, err := parse(raw)
	if err != nil {
		p.fail(col, raw, err)
		return nil
	}
	return &t
}
