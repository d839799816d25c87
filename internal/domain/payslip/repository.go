package payslip

import "context"

// PayslipRepository defines data access methods for payslips. Every read
// returns the payslip joined with its employee; the join is part of the
// contract, not an implicit load.
type PayslipRepository interface {
	// Create persists the normalized input together with its precomputed
	// totals as a single insert and returns the stored record joined with
	// its employee. Returns employee.ErrEmployeeNotFound when the
	// referenced employee does not exist.
	Create(ctx context.Context, in Input, totals Totals) (Payslip, error)

	// List returns payslips ordered by pay date descending. An empty
	// employeeID returns all payslips.
	List(ctx context.Context, employeeID string) ([]Payslip, error)

	GetByID(ctx context.Context, id string) (Payslip, error)

	// Delete returns ErrPayslipNotFound when no row matches, so concurrent
	// deletes of the same id observe "not found" rather than an error.
	Delete(ctx context.Context, id string) error
}
