package handlers

import (
	"net/http"

	"payroll/database"
	"payroll/models"
)

// CalculateEarnings stores an earnings record with total_gross recomputed
// from its components. Any total_gross in the request is discarded.
func (h *PayrollHandler) CalculateEarnings(w http.ResponseWriter, r *http.Request) {
	var req models.EarningsRequest
	if !h.decode(w, r, &req) {
		return
	}

	earnings := req.ToModel()
	if !h.checkComputed(w, earnings) {
		return
	}
	if err := database.Create(r.Context(), h.store, earnings); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, earnings)
}

func (h *PayrollHandler) CalculateWithholdings(w http.ResponseWriter, r *http.Request) {
	var req models.WithholdingsRequest
	if !h.decode(w, r, &req) {
		return
	}

	withholdings := req.ToModel()
	if !h.checkComputed(w, withholdings) {
		return
	}
	if err := database.Create(r.Context(), h.store, withholdings); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, withholdings)
}

func (h *PayrollHandler) CalculateNetPay(w http.ResponseWriter, r *http.Request) {
	var req models.NetPayRequest
	if !h.decode(w, r, &req) {
		return
	}

	netPay := req.ToModel()
	if !h.checkComputed(w, netPay) {
		return
	}
	if err := database.Create(r.Context(), h.store, netPay); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, netPay)
}
