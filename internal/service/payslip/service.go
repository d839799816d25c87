package payslip

import (
	"context"

	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	"github.com/paylite/payslip-backend-go/internal/pkg/document"
)

type PayslipServiceImpl struct {
	payslipRepo payslip.PayslipRepository
}

func NewPayslipService(payslipRepo payslip.PayslipRepository) payslip.PayslipService {
	return &PayslipServiceImpl{payslipRepo: payslipRepo}
}

func (s *PayslipServiceImpl) Create(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	in, err := req.Normalize()
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	// Totals are derived server-side, exactly once, at creation. Anything
	// the client sent for them never reaches this point.
	totals := payslip.ComputeTotals(in.Amounts)

	created, err := s.payslipRepo.Create(ctx, in, totals)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return payslip.ToResponse(created), nil
}

func (s *PayslipServiceImpl) List(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	payslips, err := s.payslipRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, payslip.ToResponse(p))
	}
	return responses, nil
}

func (s *PayslipServiceImpl) Get(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.ToResponse(p), nil
}

func (s *PayslipServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payslipRepo.Delete(ctx, id)
}

func (s *PayslipServiceImpl) ExportDocument(ctx context.Context, id string) (payslip.Document, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.Document{}, err
	}

	content, err := document.RenderPayslip(p)
	if err != nil {
		return payslip.Document{}, err
	}

	return payslip.Document{
		Filename: document.PayslipFilename(p),
		Content:  content,
	}, nil
}
