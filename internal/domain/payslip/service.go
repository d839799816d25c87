package payslip

import "context"

// Document is a rendered payslip ready for download.
type Document struct {
	Filename string
	Content  []byte
}

type PayslipService interface {
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)
	List(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	Get(ctx context.Context, id string) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
	ExportDocument(ctx context.Context, id string) (Document, error)
}
