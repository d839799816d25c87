package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	"github.com/paylite/payslip-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Storage detail stays in
// the server log; clients only ever see the generic fallback message.
func HandleError(w http.ResponseWriter, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs)
		return
	}

	switch {
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	default:
		slog.Error(fallback, slog.Any("error", err))
		InternalServerError(w, fallback)
	}
}
