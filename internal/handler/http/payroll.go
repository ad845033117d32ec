package http

import (
	"encoding/json"
	"net/http"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/balapan-hq/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler struct {
	service payroll.PayrollService
}

func NewPayrollHandler(service payroll.PayrollService) PayrollHandler {
	return PayrollHandler{service: service}
}

// Generate fills the gaps for a period: one generated-status record per
// active non-admin employee that has none yet.
func (h PayrollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	period, err := payroll.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.EnsureAllForPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generation finished", result)
}

// Reconcile creates or refreshes the payroll record for one employee.
func (h PayrollHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	period, err := payroll.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.service.EnsureForPeriod(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payload := struct {
		Outcome string                        `json:"outcome"`
		Record  payroll.PayrollRecordResponse `json:"record"`
	}{
		Outcome: string(result.Outcome),
		Record:  payroll.ToResponse(result.Record),
	}

	if result.Outcome == payroll.OutcomeCreated {
		response.Created(w, "Payroll record created", payload)
		return
	}
	response.Success(w, payload)
}

func (h PayrollHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToResponse(rec))
}

func (h PayrollHandler) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := payroll.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.service.ListByPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}
	response.Success(w, responses)
}

func (h PayrollHandler) Approve(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record approved", payroll.ToResponse(rec))
}

func (h PayrollHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record marked paid", payroll.ToResponse(rec))
}

func (h PayrollHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.MarkProcessed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record marked processed", payroll.ToResponse(rec))
}

func (h PayrollHandler) AddFine(w http.ResponseWriter, r *http.Request) {
	var req payroll.AddFineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rec, err := h.service.AddManualFine(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Fine added", payroll.ToResponse(rec))
}

func (h PayrollHandler) SetAdjustments(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetAdjustmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rec, err := h.service.SetAdjustments(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustments saved", payroll.ToResponse(rec))
}
