package payslip

import (
	"time"

	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Amounts holds the eight monetary inputs of a payslip.
type Amounts struct {
	BasicSalary        decimal.Decimal
	HouseAllowance     decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherEarnings      decimal.Decimal
	Tax                decimal.Decimal
	Insurance          decimal.Decimal
	Pension            decimal.Decimal
	OtherDeductions    decimal.Decimal
}

// Totals holds the derived fields. They are computed once at creation and
// persisted alongside the inputs.
type Totals struct {
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// Input is a validated, normalized payslip ready to be persisted.
type Input struct {
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	PayDate        time.Time
	Amounts        Amounts
	Notes          *string
}

type Payslip struct {
	ID             string
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	PayDate        time.Time
	Amounts        Amounts
	Totals         Totals
	Notes          *string
	CreatedAt      time.Time

	// Joined fields
	Employee *employee.Employee
}
