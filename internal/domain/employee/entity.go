package employee

import "time"

type Employee struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Department *string
	CreatedAt  time.Time

	// Joined fields
	PayslipCount *int64
}
