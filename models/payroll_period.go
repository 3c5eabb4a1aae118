package models

import "time"

type PayrollPeriod struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CreatedAt       time.Time `json:"-"`
	PayrollPeriodID string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	EmployerID      string    `gorm:"not null;index;size:64" json:"employer_id"`
	StartDate       Date      `gorm:"not null" json:"start_date"`
	EndDate         Date      `gorm:"not null" json:"end_date"`
	PayDate         Date      `gorm:"not null" json:"pay_date"`
}

func (PayrollPeriod) TableName() string { return "payroll_periods" }

func (PayrollPeriod) IdentityColumn() string { return "payroll_period_id" }
