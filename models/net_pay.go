package models

import "time"

type NetPay struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	CreatedAt       time.Time `json:"-"`
	NetPayID        string    `gorm:"not null;index;size:64" json:"net_pay_id"`
	EmployeeID      string    `gorm:"not null;index;size:64" json:"employee_id"`
	PayrollPeriodID string    `gorm:"not null;index;size:64" json:"payroll_period_id"`
	TotalGross      float64   `gorm:"not null" json:"total_gross"`
	TotalDeductions float64   `gorm:"not null" json:"total_deductions"`
	NetPay          float64   `gorm:"not null" json:"net_pay" validate:"finite"`
	PaymentMethod   string    `gorm:"not null;size:50" json:"payment_method"`
}

func (NetPay) TableName() string { return "net_pays" }

func (NetPay) IdentityColumn() string { return "net_pay_id" }

// Recompute sets NetPay from the gross and deduction totals carried on this
// record. It does not consult the earnings or withholdings collections.
func (n *NetPay) Recompute() {
	n.NetPay = difference(n.TotalGross, n.TotalDeductions)
}
