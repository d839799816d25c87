package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/paylite/payslip-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db database.Querier
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	query := `
		INSERT INTO employees (id, name, email, position, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, position, department, created_at
	`

	var e employee.Employee
	err = r.db.QueryRow(ctx, query,
		id.String(), strings.TrimSpace(req.Name), req.Email, strings.TrimSpace(req.Position), req.Department,
	).Scan(
		&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_email" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT e.id, e.name, e.email, e.position, e.department, e.created_at,
			   COUNT(p.id) AS payslip_count
		FROM employees e
		LEFT JOIN payslips p ON p.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var e employee.Employee
		var count int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.CreatedAt, &count); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.PayslipCount = &count
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
