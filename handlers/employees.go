package handlers

import (
	"net/http"

	"payroll/database"
	"payroll/models"
)

func (h *PayrollHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	employee := req.ToModel()
	if err := database.Create(r.Context(), h.store, employee); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *PayrollHandler) CreateEmployer(w http.ResponseWriter, r *http.Request) {
	var req models.EmployerRequest
	if !h.decode(w, r, &req) {
		return
	}

	employer := req.ToModel()
	if err := database.Create(r.Context(), h.store, employer); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employer)
}
