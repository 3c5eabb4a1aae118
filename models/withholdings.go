package models

import "time"

// Statutory defaults, in percent. The local rate varies by jurisdiction and has no default.
const (
	DefaultStateIncomeTax = 3.07
	DefaultSocialSecurity = 6.2
	DefaultMedicare       = 1.45
)

type WithholdingsAndDeductions struct {
	ID                    uint      `gorm:"primaryKey" json:"-"`
	CreatedAt             time.Time `json:"-"`
	DeductionID           string    `gorm:"not null;index;size:64" json:"deduction_id"`
	EmployeeID            string    `gorm:"not null;index;size:64" json:"employee_id"`
	PayrollPeriodID       string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	FederalIncomeTax      float64   `gorm:"not null" json:"federal_income_tax"`
	StateIncomeTax        float64   `gorm:"not null" json:"state_income_tax"`
	LocalIncomeTax        float64   `gorm:"not null" json:"local_income_tax"`
	SocialSecurity        float64   `gorm:"not null" json:"social_security"`
	Medicare              float64   `gorm:"not null" json:"medicare"`
	AdditionalMedicare    float64   `gorm:"not null" json:"additional_medicare"`
	UnemploymentInsurance float64   `gorm:"not null" json:"unemployment_insurance"`
	OtherWithholdings     float64   `gorm:"not null" json:"other_withholdings"`
	VoluntaryDeductions   float64   `gorm:"not null" json:"voluntary_deductions"`
	TotalDeductions       float64   `gorm:"not null" json:"total_deductions" validate:"finite"`
}

func (WithholdingsAndDeductions) TableName() string { return "withholdings_and_deductions" }

func (WithholdingsAndDeductions) IdentityColumn() string { return "deduction_id" }

// Recompute overwrites TotalDeductions with the sum of all nine components.
func (w *WithholdingsAndDeductions) Recompute() {
	w.TotalDeductions = sum(
		w.FederalIncomeTax,
		w.StateIncomeTax,
		w.LocalIncomeTax,
		w.SocialSecurity,
		w.Medicare,
		w.AdditionalMedicare,
		w.UnemploymentInsurance,
		w.OtherWithholdings,
		w.VoluntaryDeductions,
	)
}
