package models

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestEarningsRecompute(t *testing.T) {
	tests := []struct {
		name     string
		earnings Earnings
		want     float64
	}{
		{
			name:     "all components",
			earnings: Earnings{RegularWages: 1000, OvertimeWages: 100, Bonuses: 50, Commissions: 0},
			want:     1150,
		},
		{
			name:     "absent optional components",
			earnings: Earnings{RegularWages: 812.5, OvertimeWages: 0},
			want:     812.5,
		},
		{
			name:     "caller value overwritten",
			earnings: Earnings{RegularWages: 10, OvertimeWages: 20, Bonuses: 0.1, Commissions: 0.2, TotalGross: 99999},
			want:     30.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earnings := tt.earnings
			earnings.Recompute()
			if math.Abs(earnings.TotalGross-tt.want) > tolerance {
				t.Fatalf("expected total_gross %v, got %v", tt.want, earnings.TotalGross)
			}
		})
	}
}

func TestWithholdingsRecompute(t *testing.T) {
	withholdings := WithholdingsAndDeductions{
		FederalIncomeTax:      100,
		StateIncomeTax:        30.7,
		LocalIncomeTax:        10,
		SocialSecurity:        62,
		Medicare:              14.5,
		AdditionalMedicare:    0,
		UnemploymentInsurance: 5,
		OtherWithholdings:     0,
		VoluntaryDeductions:   0,
		TotalDeductions:       -1,
	}
	withholdings.Recompute()
	if math.Abs(withholdings.TotalDeductions-222.2) > tolerance {
		t.Fatalf("expected total_deductions 222.2, got %v", withholdings.TotalDeductions)
	}
}

func TestWithholdingsRecomputeIncludesEveryComponent(t *testing.T) {
	withholdings := WithholdingsAndDeductions{
		FederalIncomeTax:      1,
		StateIncomeTax:        2,
		LocalIncomeTax:        4,
		SocialSecurity:        8,
		Medicare:              16,
		AdditionalMedicare:    32,
		UnemploymentInsurance: 64,
		OtherWithholdings:     128,
		VoluntaryDeductions:   256,
	}
	withholdings.Recompute()
	if withholdings.TotalDeductions != 511 {
		t.Fatalf("expected 511, got %v", withholdings.TotalDeductions)
	}
}

func TestNetPayRecompute(t *testing.T) {
	netPay := NetPay{TotalGross: 1150, TotalDeductions: 222.2, NetPay: 1}
	netPay.Recompute()
	if math.Abs(netPay.NetPay-927.8) > tolerance {
		t.Fatalf("expected net_pay 927.8, got %v", netPay.NetPay)
	}

	negative := NetPay{TotalGross: 100, TotalDeductions: 250}
	negative.Recompute()
	if negative.NetPay != -150 {
		t.Fatalf("expected net_pay -150, got %v", negative.NetPay)
	}
}
