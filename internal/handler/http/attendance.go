package http

import (
	"net/http"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/balapan-hq/payroll-backend-go/internal/handler/http/response"
	attendanceService "github.com/balapan-hq/payroll-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler struct {
	service *attendanceService.AttendanceServiceImpl
}

func NewAttendanceHandler(service *attendanceService.AttendanceServiceImpl) AttendanceHandler {
	return AttendanceHandler{service: service}
}

// Recalculate recomputes lateness and hour fields for one employee's
// attendance records in a period.
func (h AttendanceHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	period, err := payroll.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	updated, err := h.service.RecalculateRange(r.Context(), employeeID, period.Start(), period.End())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recalculated", map[string]int{"updated": updated})
}
