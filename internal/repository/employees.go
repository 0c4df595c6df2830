package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
)

// EmployeeColumns 是 employees 表的列，也作为从数据库加载时表的列名
var EmployeeColumns = []string{
	"emp_id", "name", "department", "position", "employment_status", "sex",
	"dob", "date_of_hire", "date_of_termination",
	"perf_score_id", "emp_satisfaction", "salary",
}

func (r *Repository) CreateEmployeesTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS employees (
			emp_id              BIGINT PRIMARY KEY,
			name                TEXT NOT NULL,
			department          TEXT NOT NULL,
			position            TEXT NOT NULL,
			employment_status   TEXT NOT NULL,
			sex                 TEXT NOT NULL,
			dob                 DATE,
			date_of_hire        DATE,
			date_of_termination DATE,
			perf_score_id       DOUBLE PRECISION,
			emp_satisfaction    DOUBLE PRECISION,
			salary              DOUBLE PRECISION
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query)
	return err
}

// ReplaceEmployees 在一个事务中写入所有员工，truncate 为 true 时先清空表
func (r *Repository) ReplaceEmployees(employees []domain.Employee, truncate bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TxTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if truncate {
		if _, err := tx.ExecContext(ctx, `TRUNCATE TABLE employees`); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO employees (
			emp_id, name, department, position, employment_status, sex,
			dob, date_of_hire, date_of_termination,
			perf_score_id, emp_satisfaction, salary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (emp_id) DO UPDATE SET
			name = EXCLUDED.name,
			department = EXCLUDED.department,
			position = EXCLUDED.position,
			employment_status = EXCLUDED.employment_status,
			sex = EXCLUDED.sex,
			dob = EXCLUDED.dob,
			date_of_hire = EXCLUDED.date_of_hire,
			date_of_termination = EXCLUDED.date_of_termination,
			perf_score_id = EXCLUDED.perf_score_id,
			emp_satisfaction = EXCLUDED.emp_satisfaction,
			salary = EXCLUDED.salary
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range employees {
		args := []any{
			e.EmpID, e.Name, e.Department, e.Position, e.EmploymentStatus, e.Sex,
			e.DOB, e.DateOfHire, e.DateOfTermination,
			e.PerfScoreID, e.EmpSatisfaction, e.Salary,
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetAllEmployees 按 emp_id 顺序读取所有员工，年龄按 referenceYear 推导
func (r *Repository) GetAllEmployees(referenceYear int) ([]domain.Employee, error) {
	query := `
		SELECT
			emp_id, name, department, position, employment_status, sex,
			dob, date_of_hire, date_of_termination,
			perf_score_id, emp_satisfaction, salary
		FROM employees
		ORDER BY emp_id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		var dob, hire, termination sql.NullTime
		var perf, satisfaction, salary sql.NullFloat64
		dst := []any{
			&e.EmpID,
			&e.Name,
			&e.Department,
			&e.Position,
			&e.EmploymentStatus,
			&e.Sex,
			&dob,
			&hire,
			&termination,
			&perf,
			&satisfaction,
			&salary,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		e.DOB = timePtr(dob)
		e.DateOfHire = timePtr(hire)
		e.DateOfTermination = timePtr(termination)
		e.PerfScoreID = floatPtr(perf)
		e.EmpSatisfaction = floatPtr(satisfaction)
		e.Salary = floatPtr(salary)
		e.DeriveAge(referenceYear)

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) LoadTable(referenceYear int) (*domain.Table, error) {
	employees, err := r.GetAllEmployees(referenceYear)
	if err != nil {
		return nil, err
	}
	return domain.NewTable(employees, EmployeeColumns), nil
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
