package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylite/payslip-backend-go/internal/domain/payslip"
	"github.com/paylite/payslip-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ExportDocument(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")

	result, err := h.payslipService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err, "Failed to fetch payslips")
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslip.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payslipService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Failed to create payslip")
		return
	}

	response.Created(w, result)
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payslipService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Failed to fetch payslip")
		return
	}

	response.Success(w, result)
}

func (h *payslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payslipService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err, "Failed to delete payslip")
		return
	}

	response.Success(w, map[string]string{"message": "Payslip deleted successfully"})
}

func (h *payslipHandlerImpl) ExportDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.payslipService.ExportDocument(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Failed to export payslip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
