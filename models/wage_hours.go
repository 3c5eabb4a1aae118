package models

import "time"

// DefaultOvertimeRate is the Pennsylvania overtime multiplier for hours over 40 per week.
const DefaultOvertimeRate = 1.5

type WageAndHours struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	CreatedAt         time.Time `json:"-"`
	WageHoursID       string    `gorm:"not null;index;size:64" json:"wage_hours_id"`
	EmployeeID        string    `gorm:"not null;index;size:64" json:"employee_id"`
	PayrollPeriodID   string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	RegularHours      float64   `gorm:"not null" json:"regular_hours"`
	OvertimeHours     float64   `gorm:"not null" json:"overtime_hours"`
	OvertimeRate      float64   `gorm:"not null" json:"overtime_rate"`
	ShiftDifferential *float64  `json:"shift_differential"`
}

func (WageAndHours) TableName() string { return "wage_and_hours" }

func (WageAndHours) IdentityColumn() string { return "wage_hours_id" }
