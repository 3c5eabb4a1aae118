package models

// Request payloads mirror the entity field sets. Required fields are pointers
// tagged `validate:"required"` so a missing key is distinguishable from a zero
// value. Optional fields receive their defaults in ToModel. Computed fields
// have no request counterpart, so any value sent for them is dropped.

type EmployeeRequest struct {
	EmployeeID           *string `json:"employee_id" validate:"required"`
	FirstName            *string `json:"first_name" validate:"required"`
	LastName             *string `json:"last_name" validate:"required"`
	SocialSecurityNumber *string `json:"social_security_number" validate:"required"`
	DateOfBirth          *Date   `json:"date_of_birth" validate:"required"`
	Address              *string `json:"address" validate:"required"`
	City                 *string `json:"city" validate:"required"`
	State                *string `json:"state" validate:"required"`
	ZipCode              *string `json:"zip_code" validate:"required"`
	HireDate             *Date   `json:"hire_date" validate:"required"`
	Position             *string `json:"position" validate:"required"`
	EmploymentStatus     *string `json:"employment_status" validate:"required"`
	ExemptStatus         *bool   `json:"exempt_status" validate:"required"`
	PayType              *string `json:"pay_type" validate:"required"`
	Department           *string `json:"department" validate:"required"`
}

func (r *EmployeeRequest) ToModel() *Employee {
	return &Employee{
		EmployeeID:           *r.EmployeeID,
		FirstName:            *r.FirstName,
		LastName:             *r.LastName,
		SocialSecurityNumber: *r.SocialSecurityNumber,
		DateOfBirth:          *r.DateOfBirth,
		Address:              *r.Address,
		City:                 *r.City,
		State:                *r.State,
		ZipCode:              *r.ZipCode,
		HireDate:             *r.HireDate,
		Position:             *r.Position,
		EmploymentStatus:     *r.EmploymentStatus,
		ExemptStatus:         *r.ExemptStatus,
		PayType:              *r.PayType,
		Department:           *r.Department,
	}
}

type EmployerRequest struct {
	EmployerID       *string `json:"employer_id" validate:"required"`
	CompanyName      *string `json:"company_name" validate:"required"`
	FederalEIN       *string `json:"federal_ein" validate:"required"`
	StateTaxID       *string `json:"state_tax_id" validate:"required"`
	LocalTaxID       *string `json:"local_tax_id" validate:"required"`
	Address          *string `json:"address" validate:"required"`
	City             *string `json:"city" validate:"required"`
	State            *string `json:"state"`
	ZipCode          *string `json:"zip_code" validate:"required"`
	PayrollFrequency *string `json:"payroll_frequency" validate:"required"`
}

func (r *EmployerRequest) ToModel() *Employer {
	return &Employer{
		EmployerID:       *r.EmployerID,
		CompanyName:      *r.CompanyName,
		FederalEIN:       *r.FederalEIN,
		StateTaxID:       *r.StateTaxID,
		LocalTaxID:       *r.LocalTaxID,
		Address:          *r.Address,
		City:             *r.City,
		State:            valueOr(r.State, DefaultEmployerState),
		ZipCode:          *r.ZipCode,
		PayrollFrequency: *r.PayrollFrequency,
	}
}

type PayrollPeriodRequest struct {
	PayrollPeriodID *string `json:"payroll_period_id" validate:"required"`
	EmployerID      *string `json:"employer_id" validate:"required"`
	StartDate       *Date   `json:"start_date" validate:"required"`
	EndDate         *Date   `json:"end_date" validate:"required"`
	PayDate         *Date   `json:"pay_date" validate:"required"`
}

func (r *PayrollPeriodRequest) ToModel() *PayrollPeriod {
	return &PayrollPeriod{
		PayrollPeriodID: *r.PayrollPeriodID,
		EmployerID:      *r.EmployerID,
		StartDate:       *r.StartDate,
		EndDate:         *r.EndDate,
		PayDate:         *r.PayDate,
	}
}

type WageAndHoursRequest struct {
	WageHoursID       *string  `json:"wage_hours_id" validate:"required"`
	EmployeeID        *string  `json:"employee_id" validate:"required"`
	PayrollPeriodID   *string  `json:"payroll_period_id" validate:"required"`
	RegularHours      *float64 `json:"regular_hours" validate:"required"`
	OvertimeHours     *float64 `json:"overtime_hours" validate:"required"`
	OvertimeRate      *float64 `json:"overtime_rate"`
	ShiftDifferential *float64 `json:"shift_differential"`
}

func (r *WageAndHoursRequest) ToModel() *WageAndHours {
	return &WageAndHours{
		WageHoursID:       *r.WageHoursID,
		EmployeeID:        *r.EmployeeID,
		PayrollPeriodID:   *r.PayrollPeriodID,
		RegularHours:      *r.RegularHours,
		OvertimeHours:     *r.OvertimeHours,
		OvertimeRate:      valueOr(r.OvertimeRate, DefaultOvertimeRate),
		ShiftDifferential: r.ShiftDifferential,
	}
}

type EarningsRequest struct {
	EarningsID      *string  `json:"earnings_id" validate:"required"`
	EmployeeID      *string  `json:"employee_id" validate:"required"`
	PayrollPeriodID *string  `json:"payroll_period_id" validate:"required"`
	GrossEarnings   *float64 `json:"gross_earnings" validate:"required"`
	RegularWages    *float64 `json:"regular_wages" validate:"required"`
	OvertimeWages   *float64 `json:"overtime_wages" validate:"required"`
	Bonuses         *float64 `json:"bonuses"`
	Commissions     *float64 `json:"commissions"`
}

func (r *EarningsRequest) ToModel() *Earnings {
	return &Earnings{
		EarningsID:      *r.EarningsID,
		EmployeeID:      *r.EmployeeID,
		PayrollPeriodID: *r.PayrollPeriodID,
		GrossEarnings:   *r.GrossEarnings,
		RegularWages:    *r.RegularWages,
		OvertimeWages:   *r.OvertimeWages,
		Bonuses:         valueOr(r.Bonuses, 0),
		Commissions:     valueOr(r.Commissions, 0),
	}
}

type WithholdingsRequest struct {
	DeductionID           *string  `json:"deduction_id" validate:"required"`
	EmployeeID            *string  `json:"employee_id" validate:"required"`
	PayrollPeriodID       *string  `json:"payroll_period_id" validate:"required"`
	FederalIncomeTax      *float64 `json:"federal_income_tax" validate:"required"`
	StateIncomeTax        *float64 `json:"state_income_tax"`
	LocalIncomeTax        *float64 `json:"local_income_tax" validate:"required"`
	SocialSecurity        *float64 `json:"social_security"`
	Medicare              *float64 `json:"medicare"`
	AdditionalMedicare    *float64 `json:"additional_medicare"`
	UnemploymentInsurance *float64 `json:"unemployment_insurance" validate:"required"`
	OtherWithholdings     *float64 `json:"other_withholdings"`
	VoluntaryDeductions   *float64 `json:"voluntary_deductions"`
}

func (r *WithholdingsRequest) ToModel() *WithholdingsAndDeductions {
	return &WithholdingsAndDeductions{
		DeductionID:           *r.DeductionID,
		EmployeeID:            *r.EmployeeID,
		PayrollPeriodID:       *r.PayrollPeriodID,
		FederalIncomeTax:      *r.FederalIncomeTax,
		StateIncomeTax:        valueOr(r.StateIncomeTax, DefaultStateIncomeTax),
		LocalIncomeTax:        *r.LocalIncomeTax,
		SocialSecurity:        valueOr(r.SocialSecurity, DefaultSocialSecurity),
		Medicare:              valueOr(r.Medicare, DefaultMedicare),
		AdditionalMedicare:    valueOr(r.AdditionalMedicare, 0),
		UnemploymentInsurance: *r.UnemploymentInsurance,
		OtherWithholdings:     valueOr(r.OtherWithholdings, 0),
		VoluntaryDeductions:   valueOr(r.VoluntaryDeductions, 0),
	}
}

type NetPayRequest struct {
	NetPayID        *string  `json:"net_pay_id" validate:"required"`
	EmployeeID      *string  `json:"employee_id" validate:"required"`
	PayrollPeriodID *string  `json:"payroll_period_id" validate:"required"`
	TotalGross      *float64 `json:"total_gross" validate:"required"`
	TotalDeductions *float64 `json:"total_deductions" validate:"required"`
	PaymentMethod   *string  `json:"payment_method" validate:"required"`
}

func (r *NetPayRequest) ToModel() *NetPay {
	return &NetPay{
		NetPayID:        *r.NetPayID,
		EmployeeID:      *r.EmployeeID,
		PayrollPeriodID: *r.PayrollPeriodID,
		TotalGross:      *r.TotalGross,
		TotalDeductions: *r.TotalDeductions,
		PaymentMethod:   *r.PaymentMethod,
	}
}

type TaxReportingRequest struct {
	ReportID        *string `json:"report_id" validate:"required"`
	EmployerID      *string `json:"employer_id" validate:"required"`
	PayrollPeriodID *string `json:"payroll_period_id" validate:"required"`
	FilingType      *string `json:"filing_type" validate:"required"`
	FilingDueDate   *Date   `json:"filing_due_date" validate:"required"`
	FilingStatus    *string `json:"filing_status" validate:"required"`
}

func (r *TaxReportingRequest) ToModel() *TaxReporting {
	return &TaxReporting{
		ReportID:        *r.ReportID,
		EmployerID:      *r.EmployerID,
		PayrollPeriodID: *r.PayrollPeriodID,
		FilingType:      *r.FilingType,
		FilingDueDate:   *r.FilingDueDate,
		FilingStatus:    *r.FilingStatus,
	}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
