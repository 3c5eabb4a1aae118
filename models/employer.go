package models

import "time"

// DefaultEmployerState is applied when an employer is submitted without a state.
const DefaultEmployerState = "PA"

type Employer struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	CreatedAt        time.Time `json:"-"`
	EmployerID       string    `gorm:"not null;index;size:64" json:"employer_id"`
	CompanyName      string    `gorm:"not null;size:200" json:"company_name"`
	FederalEIN       string    `gorm:"column:federal_ein;not null;size:20" json:"federal_ein"`
	StateTaxID       string    `gorm:"not null;size:20" json:"state_tax_id"`
	LocalTaxID       string    `gorm:"not null;size:20" json:"local_tax_id"`
	Address          string    `gorm:"not null;size:200" json:"address"`
	City             string    `gorm:"not null;size:100" json:"city"`
	State            string    `gorm:"not null;size:2" json:"state"`
	ZipCode          string    `gorm:"not null;size:10" json:"zip_code"`
	PayrollFrequency string    `gorm:"not null;size:50" json:"payroll_frequency"`
}

func (Employer) TableName() string { return "employers" }

func (Employer) IdentityColumn() string { return "employer_id" }
