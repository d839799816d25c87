package employee

import (
	"testing"

	"github.com/paylite/payslip-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  CreateEmployeeRequest
		want map[string]string
	}{
		{
			name: "valid",
			req:  CreateEmployeeRequest{Name: "Ana", Email: "ana@x.com", Position: "Engineer"},
			want: nil,
		},
		{
			name: "empty name",
			req:  CreateEmployeeRequest{Name: "  ", Email: "ana@x.com", Position: "Engineer"},
			want: map[string]string{"name": "Name is required"},
		},
		{
			name: "malformed email",
			req:  CreateEmployeeRequest{Name: "Ana", Email: "not-an-email", Position: "Engineer"},
			want: map[string]string{"email": "Invalid email address"},
		},
		{
			name: "empty position",
			req:  CreateEmployeeRequest{Name: "Ana", Email: "ana@x.com"},
			want: map[string]string{"position": "Position is required"},
		},
		{
			name: "everything wrong at once",
			req:  CreateEmployeeRequest{},
			want: map[string]string{
				"name":     "Name is required",
				"email":    "Invalid email address",
				"position": "Position is required",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.want == nil {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, c.want, errs.ToMap())
		})
	}
}

func TestCreateEmployeeRequest_DepartmentOptional(t *testing.T) {
	dept := "Platform"
	req := CreateEmployeeRequest{Name: "Ana", Email: "ana@x.com", Position: "Engineer", Department: &dept}
	assert.NoError(t, req.Validate())

	req.Department = nil
	assert.NoError(t, req.Validate())
}
