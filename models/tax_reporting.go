package models

import "time"

type TaxReporting struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CreatedAt       time.Time `json:"-"`
	ReportID        string    `gorm:"not null;index;size:64" json:"report_id"`
	EmployerID      string    `gorm:"not null;index;size:64" json:"employer_id"`
	PayrollPeriodID string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	FilingType      string    `gorm:"not null;size:50" json:"filing_type"` // Quarterly, Monthly, Semi-Monthly, Semi-Weekly
	FilingDueDate   Date      `gorm:"not null" json:"filing_due_date"`
	FilingStatus    string    `gorm:"not null;size:50" json:"filing_status"`
}

func (TaxReporting) TableName() string { return "tax_reportings" }

func (TaxReporting) IdentityColumn() string { return "report_id" }
