package models

import "time"

type Employee struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	CreatedAt            time.Time `json:"-"`
	EmployeeID           string    `gorm:"not null;index;size:64" json:"employee_id"`
	FirstName            string    `gorm:"not null;size:100" json:"first_name"`
	LastName             string    `gorm:"not null;size:100" json:"last_name"`
	SocialSecurityNumber string    `gorm:"not null;size:11" json:"social_security_number"`
	DateOfBirth          Date      `gorm:"not null" json:"date_of_birth"`
	Address              string    `gorm:"not null;size:200" json:"address"`
	City                 string    `gorm:"not null;size:100" json:"city"`
	State                string    `gorm:"not null;size:2" json:"state"`
	ZipCode              string    `gorm:"not null;size:10" json:"zip_code"`
	HireDate             Date      `gorm:"not null" json:"hire_date"`
	Position             string    `gorm:"not null;size:100" json:"position"`
	EmploymentStatus     string    `gorm:"not null;size:50" json:"employment_status"`
	ExemptStatus         bool      `gorm:"not null" json:"exempt_status"`
	PayType              string    `gorm:"not null;size:50" json:"pay_type"`
	Department           string    `gorm:"not null;size:100" json:"department"`
}

func (Employee) TableName() string { return "employees" }

func (Employee) IdentityColumn() string { return "employee_id" }

