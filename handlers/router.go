package handlers

import (
	"net/http"

	"payroll/config"
	"payroll/database"
	"payroll/middleware"
	"payroll/models"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg *config.Config, store *database.Store) http.Handler {
	h := NewPayrollHandler(cfg, store)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.LimitBody(cfg.MaxBodyBytes))

	router.Get("/", h.Root)
	router.Get("/healthz", h.Healthz)

	// Employees
	router.Post("/employee/", h.CreateEmployee)
	router.Get("/employee/{employee_id}", getRecord[models.Employee](h, "employee_id", "Employee"))
	router.Get("/employees/", listRecords[models.Employee](h))

	// Employers
	router.Post("/employer/", h.CreateEmployer)
	router.Get("/employer/{employer_id}", getRecord[models.Employer](h, "employer_id", "Employer"))
	router.Get("/employers/", listRecords[models.Employer](h))

	// Payroll periods and hours
	router.Post("/payroll_period/", h.CreatePayrollPeriod)
	router.Get("/payroll_period/{payroll_period_id}", getRecord[models.PayrollPeriod](h, "payroll_period_id", "Payroll period"))
	router.Get("/payroll_periods/", listRecords[models.PayrollPeriod](h))

	router.Post("/wage_hours/", h.RecordWageHours)
	router.Get("/wage_hours/{wage_hours_id}", getRecord[models.WageAndHours](h, "wage_hours_id", "Wage and hours entry"))
	router.Get("/wage_hours/", listRecords[models.WageAndHours](h))

	// Calculations
	router.Post("/earnings/", h.CalculateEarnings)
	router.Get("/earnings/{earnings_id}", getRecord[models.Earnings](h, "earnings_id", "Earnings"))
	router.Get("/earnings/", listRecords[models.Earnings](h))

	router.Post("/withholdings/", h.CalculateWithholdings)
	router.Get("/withholdings/{deduction_id}", getRecord[models.WithholdingsAndDeductions](h, "deduction_id", "Withholdings"))
	router.Get("/withholdings/", listRecords[models.WithholdingsAndDeductions](h))

	router.Post("/net_pay/", h.CalculateNetPay)
	router.Get("/net_pay/{net_pay_id}", getRecord[models.NetPay](h, "net_pay_id", "Net pay"))
	router.Get("/net_pays/", listRecords[models.NetPay](h))
	router.Get("/net_pays/export.csv", h.ExportNetPayCSV)

	// Tax reporting
	router.Post("/tax_reporting/", h.RecordTaxReport)
	router.Get("/tax_reporting/{report_id}", getRecord[models.TaxReporting](h, "report_id", "Tax report"))
	router.Get("/tax_reportings/", listRecords[models.TaxReporting](h))

	return router
}
