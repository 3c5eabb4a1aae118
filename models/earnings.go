package models

import "time"

type Earnings struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CreatedAt       time.Time `json:"-"`
	EarningsID      string    `gorm:"not null;index;size:64" json:"earnings_id"`
	EmployeeID      string    `gorm:"not null;index;size:64" json:"employee_id"`
	PayrollPeriodID string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	GrossEarnings   float64   `gorm:"not null" json:"gross_earnings"`
	RegularWages    float64   `gorm:"not null" json:"regular_wages"`
	OvertimeWages   float64   `gorm:"not null" json:"overtime_wages"`
	Bonuses         float64   `gorm:"not null" json:"bonuses"`
	Commissions     float64   `gorm:"not null" json:"commissions"`
	TotalGross      float64   `gorm:"not null" json:"total_gross" validate:"finite"`
}

func (Earnings) TableName() string { return "earnings" }

func (Earnings) IdentityColumn() string { return "earnings_id" }

// Recompute overwrites TotalGross with the sum of the earnings components.
func (e *Earnings) Recompute() {
	e.TotalGross = sum(e.RegularWages, e.OvertimeWages, e.Bonuses, e.Commissions)
}
