package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// List returns all employees ordered by creation time descending,
	// each annotated with its payslip count.
	List(ctx context.Context) ([]Employee, error)
}
