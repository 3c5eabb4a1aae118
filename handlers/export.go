package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"regexp"

	"payroll/database"
	"payroll/models"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ExportNetPayCSV writes the payroll register: every net pay record in
// insertion order, optionally limited to one payroll period or employee.
func (h *PayrollHandler) ExportNetPayCSV(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	netPays, err := database.List[models.NetPay](r.Context(), h.store, filter)
	if err != nil {
		writeServerError(w, err)
		return
	}

	period := "all"
	if filter.PayrollPeriodID != "" {
		period = unsafeFilenameChars.ReplaceAllString(filter.PayrollPeriodID, "_")
	}
	filename := fmt.Sprintf("payroll_register_%s.csv", period)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Net Pay ID", "Employee ID", "Payroll Period ID", "Total Gross", "Total Deductions", "Net Pay", "Payment Method"})

	for _, netPay := range netPays {
		writer.Write([]string{
			netPay.NetPayID,
			netPay.EmployeeID,
			netPay.PayrollPeriodID,
			fmt.Sprintf("%.2f", netPay.TotalGross),
			fmt.Sprintf("%.2f", netPay.TotalDeductions),
			fmt.Sprintf("%.2f", netPay.NetPay),
			netPay.PaymentMethod,
		})
	}
}
