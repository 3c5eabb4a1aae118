package handlers

import (
	"net/http"

	"payroll/database"
	"payroll/models"
)

func (h *PayrollHandler) CreatePayrollPeriod(w http.ResponseWriter, r *http.Request) {
	var req models.PayrollPeriodRequest
	if !h.decode(w, r, &req) {
		return
	}

	period := req.ToModel()
	if err := database.Create(r.Context(), h.store, period); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, period)
}

func (h *PayrollHandler) RecordWageHours(w http.ResponseWriter, r *http.Request) {
	var req models.WageAndHoursRequest
	if !h.decode(w, r, &req) {
		return
	}

	wageHours := req.ToModel()
	if err := database.Create(r.Context(), h.store, wageHours); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wageHours)
}

func (h *PayrollHandler) RecordTaxReport(w http.ResponseWriter, r *http.Request) {
	var req models.TaxReportingRequest
	if !h.decode(w, r, &req) {
		return
	}

	report := req.ToModel()
	if err := database.Create(r.Context(), h.store, report); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
