package domain

// Table 是加载完成后只读的员工表，可以被多个 goroutine 同时读取
type Table struct {
	rows    []Employee
	columns []string
}

// NewTable 会复制传入的切片，调用方之后的修改不会影响 Table
func NewTable(rows []Employee, columns []string) *Table {
	t := &Table{
		rows:    make([]Employee, len(rows)),
		columns: make([]string, len(columns)),
	}
	copy(t.rows, rows)
	copy(t.columns, columns)
	return t
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) At(i int) Employee {
	return t.rows[i]
}

// Columns 返回源文件中的列名
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) Each(fn func(e *Employee)) {
	for i := range t.rows {
		e := t.rows[i]
		fn(&e)
	}
}

// Filter 返回满足条件的行组成的新表
func (t *Table) Filter(pred func(e *Employee) bool) *Table {
	rows := make([]Employee, 0)
	for i := range t.rows {
		e := t.rows[i]
		if pred(&e) {
			rows = append(rows, e)
		}
	}
	return &Table{rows: rows, columns: t.columns}
}
