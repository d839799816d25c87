package payslip

// ComputeTotals derives the payslip totals from the eight monetary inputs.
// Pure and idempotent; decimal arithmetic keeps repeated additions exact.
// NetPay may be negative and is not clamped.
func ComputeTotals(a Amounts) Totals {
	totalEarnings := a.BasicSalary.
		Add(a.HouseAllowance).
		Add(a.TransportAllowance).
		Add(a.OtherEarnings)

	totalDeductions := a.Tax.
		Add(a.Insurance).
		Add(a.Pension).
		Add(a.OtherDeductions)

	return Totals{
		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		NetPay:          totalEarnings.Sub(totalDeductions),
	}
}
