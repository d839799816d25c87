package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paylite/payslip-backend-go/internal/config"
	"github.com/paylite/payslip-backend-go/internal/domain/employee"
	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	employeeService "github.com/paylite/payslip-backend-go/internal/service/employee"
	payslipService "github.com/paylite/payslip-backend-go/internal/service/payslip"
	"github.com/stretchr/testify/require"
)

// In-memory repositories implementing the domain contracts, so handler tests
// exercise the full router/handler/service stack without a database.

type fakeEmployeeRepo struct {
	employees []employee.Employee
	counts    map[string]int64
	seq       int
	failWith  error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{counts: map[string]int64{}}
}

func (f *fakeEmployeeRepo) nextCreatedAt() time.Time {
	f.seq++
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
}

func (f *fakeEmployeeRepo) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if f.failWith != nil {
		return employee.Employee{}, f.failWith
	}
	for _, e := range f.employees {
		if e.Email == req.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	e := employee.Employee{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		CreatedAt:  f.nextCreatedAt(),
	}
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]employee.Employee, len(f.employees))
	copy(out, f.employees)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	for i := range out {
		count := f.counts[out[i].ID]
		out[i].PayslipCount = &count
	}
	return out, nil
}

type fakePayslipRepo struct {
	employees *fakeEmployeeRepo
	payslips  []payslip.Payslip
	failWith  error
}

func (f *fakePayslipRepo) employeeByID(id string) (employee.Employee, bool) {
	for _, e := range f.employees.employees {
		if e.ID == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

func (f *fakePayslipRepo) Create(_ context.Context, in payslip.Input, totals payslip.Totals) (payslip.Payslip, error) {
	if f.failWith != nil {
		return payslip.Payslip{}, f.failWith
	}
	emp, ok := f.employeeByID(in.EmployeeID)
	if !ok {
		return payslip.Payslip{}, employee.ErrEmployeeNotFound
	}
	p := payslip.Payslip{
		ID:             uuid.Must(uuid.NewV7()).String(),
		EmployeeID:     in.EmployeeID,
		PayPeriodStart: in.PayPeriodStart,
		PayPeriodEnd:   in.PayPeriodEnd,
		PayDate:        in.PayDate,
		Amounts:        in.Amounts,
		Totals:         totals,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
		Employee:       &emp,
	}
	f.payslips = append(f.payslips, p)
	f.employees.counts[in.EmployeeID]++
	return p, nil
}

func (f *fakePayslipRepo) List(_ context.Context, employeeID string) ([]payslip.Payslip, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []payslip.Payslip{}
	for _, p := range f.payslips {
		if employeeID == "" || p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PayDate.After(out[j].PayDate) })
	return out, nil
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string) (payslip.Payslip, error) {
	if f.failWith != nil {
		return payslip.Payslip{}, f.failWith
	}
	for _, p := range f.payslips {
		if p.ID == id {
			return p, nil
		}
	}
	return payslip.Payslip{}, payslip.ErrPayslipNotFound
}

func (f *fakePayslipRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, p := range f.payslips {
		if p.ID == id {
			f.payslips = append(f.payslips[:i], f.payslips[i+1:]...)
			f.employees.counts[p.EmployeeID]--
			return nil
		}
	}
	return payslip.ErrPayslipNotFound
}

func newTestRouter(empRepo *fakeEmployeeRepo, slipRepo *fakePayslipRepo) *chi.Mux {
	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", LogLevel: "error"},
		CORS: config.CORSConfig{AllowedOrigin: "http://localhost:3000"},
	}
	employeeHandler := NewEmployeeHandler(employeeService.NewEmployeeService(empRepo))
	payslipHandler := NewPayslipHandler(payslipService.NewPayslipService(slipRepo))
	return NewRouter(cfg, employeeHandler, payslipHandler)
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func detailMap(e errorBody) map[string]string {
	m := map[string]string{}
	for _, d := range e.Details {
		m[d.Field] = d.Message
	}
	return m
}
