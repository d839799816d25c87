package document

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

// Page geometry in millimeters, A4 portrait.
const (
	pageWidth  = 210.0
	marginX    = 14.0
	tableWidth = pageWidth - 2*marginX
	descWidth  = 120.0
	amtWidth   = tableWidth - descWidth
)

const longDateLayout = "January 2, 2006"

var whitespaceRegex = regexp.MustCompile(`\s+`)

// PayslipFilename derives the download filename from the employee name and
// pay date, whitespace replaced with underscores.
func PayslipFilename(p payslip.Payslip) string {
	name := ""
	if p.Employee != nil {
		name = p.Employee.Name
	}
	return fmt.Sprintf("payslip_%s_%s.pdf",
		whitespaceRegex.ReplaceAllString(name, "_"),
		whitespaceRegex.ReplaceAllString(p.PayDate.Format(longDateLayout), "_"),
	)
}

// RenderPayslip produces the formatted payslip document: header band,
// employee info block, earnings and deductions tables with total rows, a
// highlighted net-pay band, an optional wrapped notes block and a footer
// with the generation date and truncated payslip id.
func RenderPayslip(p payslip.Payslip) ([]byte, error) {
	if p.Employee == nil {
		return nil, errors.New("payslip is missing its employee")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(59, 130, 246)
	pdf.Rect(0, 0, pageWidth, 35, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 8)
	pdf.CellFormat(pageWidth, 10, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageWidth, 8, "Employee Payment Statement", "", 1, "C", false, 0, "")

	// Employee information
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginX, 45, "Employee Information")

	info := [][2]string{
		{"Name:", p.Employee.Name},
		{"Position:", p.Employee.Position},
		{"Email:", p.Employee.Email},
		{"Pay Period:", p.PayPeriodStart.Format(longDateLayout) + " - " + p.PayPeriodEnd.Format(longDateLayout)},
		{"Pay Date:", p.PayDate.Format(longDateLayout)},
	}
	y := 52.0
	pdf.SetFontSize(11)
	for _, line := range info {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(marginX, y, line[0])
		pdf.SetFont("Helvetica", "", 11)
		pdf.Text(50, y, line[1])
		y += 7
	}

	// Earnings
	y += 8
	y = renderAmountTable(pdf, y, "Earnings", [][2]string{
		{"Basic Salary", money(p.Amounts.BasicSalary)},
		{"House Allowance", money(p.Amounts.HouseAllowance)},
		{"Transport Allowance", money(p.Amounts.TransportAllowance)},
		{"Other Earnings", money(p.Amounts.OtherEarnings)},
	}, "Total Earnings", money(p.Totals.TotalEarnings), rgb{34, 197, 94}, rgb{220, 252, 231})

	// Deductions
	y += 10
	y = renderAmountTable(pdf, y, "Deductions", [][2]string{
		{"Tax", money(p.Amounts.Tax)},
		{"Insurance", money(p.Amounts.Insurance)},
		{"Pension", money(p.Amounts.Pension)},
		{"Other Deductions", money(p.Amounts.OtherDeductions)},
	}, "Total Deductions", money(p.Totals.TotalDeductions), rgb{239, 68, 68}, rgb{254, 226, 226})

	// Net pay band
	y += 10
	pdf.SetFillColor(59, 130, 246)
	pdf.Rect(marginX, y, tableWidth, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, y+13, "NET PAY:")
	netPay := money(p.Totals.NetPay)
	pdf.Text(pageWidth-marginX-6-pdf.GetStringWidth(netPay), y+13, netPay)

	// Notes
	if p.Notes != nil && *p.Notes != "" {
		y += 30
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(marginX, y, "Notes:")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginX, y+3)
		pdf.MultiCell(tableWidth, 5, *p.Notes, "", "L", false)
	}

	// Footer
	_, pageHeight := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	footer := fmt.Sprintf("Generated on %s | Payslip ID: %s",
		time.Now().Format("1/2/2006"), truncateID(p.ID))
	pdf.SetXY(0, pageHeight-14)
	pdf.CellFormat(pageWidth, 6, footer, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip document: %w", err)
	}
	return buf.Bytes(), nil
}

type rgb struct{ r, g, b int }

func renderAmountTable(pdf *gofpdf.Fpdf, y float64, title string, rows [][2]string, totalLabel, totalValue string, head, foot rgb) float64 {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginX, y, title)
	y += 5

	const rowHeight = 8.0

	// Header row
	pdf.SetXY(marginX, y)
	pdf.SetFillColor(head.r, head.g, head.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(descWidth, rowHeight, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(amtWidth, rowHeight, "Amount", "", 1, "R", true, 0, "")
	y += rowHeight

	// Body rows, striped
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	for i, row := range rows {
		pdf.SetXY(marginX, y)
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(descWidth, rowHeight, row[0], "", 0, "L", fill, 0, "")
		pdf.CellFormat(amtWidth, rowHeight, row[1], "", 1, "R", fill, 0, "")
		y += rowHeight
	}

	// Total row
	pdf.SetXY(marginX, y)
	pdf.SetFillColor(foot.r, foot.g, foot.b)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(descWidth, rowHeight, totalLabel, "", 0, "L", true, 0, "")
	pdf.CellFormat(amtWidth, rowHeight, totalValue, "", 1, "R", true, 0, "")
	return y + rowHeight
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
