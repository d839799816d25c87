package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	"github.com/paylite/payslip-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db database.Querier
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

// payslipColumns is the select list every payslip read shares: the full
// payslip row followed by the joined employee row.
const payslipColumns = `
	p.id, p.employee_id, p.pay_period_start, p.pay_period_end, p.pay_date,
	p.basic_salary, p.house_allowance, p.transport_allowance, p.other_earnings,
	p.tax, p.insurance, p.pension, p.other_deductions,
	p.total_earnings, p.total_deductions, p.net_pay,
	p.notes, p.created_at,
	e.id, e.name, e.email, e.position, e.department, e.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayslip(row rowScanner) (payslip.Payslip, error) {
	var p payslip.Payslip
	var e employee.Employee
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.PayDate,
		&p.Amounts.BasicSalary, &p.Amounts.HouseAllowance, &p.Amounts.TransportAllowance, &p.Amounts.OtherEarnings,
		&p.Amounts.Tax, &p.Amounts.Insurance, &p.Amounts.Pension, &p.Amounts.OtherDeductions,
		&p.Totals.TotalEarnings, &p.Totals.TotalDeductions, &p.Totals.NetPay,
		&p.Notes, &p.CreatedAt,
		&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.CreatedAt,
	)
	if err != nil {
		return payslip.Payslip{}, err
	}
	p.Employee = &e
	return p, nil
}

func (r *payslipRepository) Create(ctx context.Context, in payslip.Input, totals payslip.Totals) (payslip.Payslip, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to generate payslip id: %w", err)
	}

	// Single round trip: insert the fully-computed record and return it
	// joined with its employee.
	query := `
		WITH p AS (
			INSERT INTO payslips (
				id, employee_id, pay_period_start, pay_period_end, pay_date,
				basic_salary, house_allowance, transport_allowance, other_earnings,
				tax, insurance, pension, other_deductions,
				total_earnings, total_deductions, net_pay, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING *
		)
		SELECT ` + payslipColumns + `
		FROM p
		JOIN employees e ON e.id = p.employee_id
	`

	row := r.db.QueryRow(ctx, query,
		id.String(), in.EmployeeID, in.PayPeriodStart, in.PayPeriodEnd, in.PayDate,
		in.Amounts.BasicSalary, in.Amounts.HouseAllowance, in.Amounts.TransportAllowance, in.Amounts.OtherEarnings,
		in.Amounts.Tax, in.Amounts.Insurance, in.Amounts.Pension, in.Amounts.OtherDeductions,
		totals.TotalEarnings, totals.TotalDeductions, totals.NetPay, in.Notes,
	)

	p, err := scanPayslip(row)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503: foreign key violation, 22P02: employeeId is not a UUID at
		// all. Either way the referenced employee does not exist.
		if errors.As(err, &pgErr) && (pgErr.Code == "23503" || pgErr.Code == "22P02") {
			return payslip.Payslip{}, employee.ErrEmployeeNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) List(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE $1 = '' OR p.employee_id::text = $1
		ORDER BY p.pay_date DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	payslips := []payslip.Payslip{}
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payslips: %w", err)
	}

	return payslips, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayslip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}

// isInvalidUUID reports whether err is Postgres rejecting a malformed uuid
// literal (22P02). A malformed id can never match a row, so callers treat it
// as "not found" rather than a storage failure.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
