package handlers

import (
	"errors"
	"net/http"

	"payroll/config"
	"payroll/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const welcomeMessage = "Welcome to the Pennsylvania Payroll System API!"

type PayrollHandler struct {
	config   *config.Config
	store    *database.Store
	validate *validator.Validate
}

func NewPayrollHandler(cfg *config.Config, store *database.Store) *PayrollHandler {
	return &PayrollHandler{
		config:   cfg,
		store:    store,
		validate: newValidator(),
	}
}

func (h *PayrollHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (h *PayrollHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getRecord serves a single record looked up by the URL parameter param.
// label is the entity name used in the not-found message.
func getRecord[T database.Record](h *PayrollHandler, param, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := database.FindByID[T](r.Context(), h.store, chi.URLParam(r, param))
		if errors.Is(err, database.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, label+" not found")
			return
		}
		if err != nil {
			writeServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// listRecords serves a whole collection, narrowed by the optional
// employee_id, employer_id and payroll_period_id query parameters.
func listRecords[T database.Record](h *PayrollHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := database.List[T](r.Context(), h.store, filterFromQuery(r))
		if err != nil {
			writeServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func filterFromQuery(r *http.Request) database.Filter {
	query := r.URL.Query()
	return database.Filter{
		EmployeeID:      query.Get("employee_id"),
		EmployerID:      query.Get("employer_id"),
		PayrollPeriodID: query.Get("payroll_period_id"),
	}
}
