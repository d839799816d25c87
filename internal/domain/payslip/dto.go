package payslip

import (
	"time"

	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/paylite/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreatePayslipRequest struct {
	EmployeeID     string `json:"employeeId"`
	PayPeriodStart string `json:"payPeriodStart"`
	PayPeriodEnd   string `json:"payPeriodEnd"`
	PayDate        string `json:"payDate"`

	// Earnings. BasicSalary is required; the rest default to zero.
	BasicSalary        *decimal.Decimal `json:"basicSalary,omitempty"`
	HouseAllowance     *decimal.Decimal `json:"houseAllowance,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transportAllowance,omitempty"`
	OtherEarnings      *decimal.Decimal `json:"otherEarnings,omitempty"`

	// Deductions, all defaulting to zero.
	Tax             *decimal.Decimal `json:"tax,omitempty"`
	Insurance       *decimal.Decimal `json:"insurance,omitempty"`
	Pension         *decimal.Decimal `json:"pension,omitempty"`
	OtherDeductions *decimal.Decimal `json:"otherDeductions,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// Normalize validates the request and returns the normalized payslip input
// with defaults applied and dates parsed. On failure it returns the complete
// list of field violations, not just the first.
func (r *CreatePayslipRequest) Normalize() (Input, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is required"})
	}

	parseDate := func(field, value string) time.Time {
		t, ok := validator.ParseDate(value)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "Invalid date"})
		}
		return t
	}

	start := parseDate("payPeriodStart", r.PayPeriodStart)
	end := parseDate("payPeriodEnd", r.PayPeriodEnd)
	payDate := parseDate("payDate", r.PayDate)

	var basicSalary decimal.Decimal
	switch {
	case r.BasicSalary == nil:
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "Basic salary is required"})
	case r.BasicSalary.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "Basic salary must be positive"})
	default:
		basicSalary = *r.BasicSalary
	}

	zeroDefault := func(field string, value *decimal.Decimal) decimal.Decimal {
		if value == nil {
			return decimal.Zero
		}
		if value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
		return *value
	}

	amounts := Amounts{
		BasicSalary:        basicSalary,
		HouseAllowance:     zeroDefault("houseAllowance", r.HouseAllowance),
		TransportAllowance: zeroDefault("transportAllowance", r.TransportAllowance),
		OtherEarnings:      zeroDefault("otherEarnings", r.OtherEarnings),
		Tax:                zeroDefault("tax", r.Tax),
		Insurance:          zeroDefault("insurance", r.Insurance),
		Pension:            zeroDefault("pension", r.Pension),
		OtherDeductions:    zeroDefault("otherDeductions", r.OtherDeductions),
	}

	if len(errs) > 0 {
		return Input{}, errs
	}

	return Input{
		EmployeeID:     r.EmployeeID,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		PayDate:        payDate,
		Amounts:        amounts,
		Notes:          r.Notes,
	}, nil
}

type PayslipResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	PayPeriodStart string `json:"payPeriodStart"`
	PayPeriodEnd   string `json:"payPeriodEnd"`
	PayDate        string `json:"payDate"`

	BasicSalary        decimal.Decimal `json:"basicSalary"`
	HouseAllowance     decimal.Decimal `json:"houseAllowance"`
	TransportAllowance decimal.Decimal `json:"transportAllowance"`
	OtherEarnings      decimal.Decimal `json:"otherEarnings"`
	Tax                decimal.Decimal `json:"tax"`
	Insurance          decimal.Decimal `json:"insurance"`
	Pension            decimal.Decimal `json:"pension"`
	OtherDeductions    decimal.Decimal `json:"otherDeductions"`

	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`

	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
}

func ToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		PayPeriodStart:     p.PayPeriodStart.Format(dateLayout),
		PayPeriodEnd:       p.PayPeriodEnd.Format(dateLayout),
		PayDate:            p.PayDate.Format(dateLayout),
		BasicSalary:        p.Amounts.BasicSalary,
		HouseAllowance:     p.Amounts.HouseAllowance,
		TransportAllowance: p.Amounts.TransportAllowance,
		OtherEarnings:      p.Amounts.OtherEarnings,
		Tax:                p.Amounts.Tax,
		Insurance:          p.Amounts.Insurance,
		Pension:            p.Amounts.Pension,
		OtherDeductions:    p.Amounts.OtherDeductions,
		TotalEarnings:      p.Totals.TotalEarnings,
		TotalDeductions:    p.Totals.TotalDeductions,
		NetPay:             p.Totals.NetPay,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
	}
	if p.Employee != nil {
		emp := employee.ToResponse(*p.Employee)
		resp.Employee = &emp
	}
	return resp
}
