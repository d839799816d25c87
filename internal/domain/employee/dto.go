package employee

import (
	"time"

	"github.com/paylite/payslip-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department *string `json:"department,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "Position is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	Department   *string   `json:"department,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	PayslipCount *int64    `json:"payslipCount,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		CreatedAt:    e.CreatedAt,
		PayslipCount: e.PayslipCount,
	}
}
