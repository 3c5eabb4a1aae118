package database

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"payroll/models"

	"golang.org/x/sync/errgroup"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Options{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func testEmployee(id, firstName string) *models.Employee {
	return &models.Employee{
		EmployeeID:           id,
		FirstName:            firstName,
		LastName:             "Kowalski",
		SocialSecurityNumber: "123-45-6789",
		DateOfBirth:          models.NewDate(1988, time.July, 4),
		Address:              "100 Liberty Ave",
		City:                 "Pittsburgh",
		State:                "PA",
		ZipCode:              "15222",
		HireDate:             models.NewDate(2020, time.January, 6),
		Position:             "Welder",
		EmploymentStatus:     "Full-Time",
		ExemptStatus:         false,
		PayType:              "Hourly",
		Department:           "Fabrication",
	}
}

func stripSurrogate(e models.Employee) models.Employee {
	e.ID = 0
	e.CreatedAt = time.Time{}
	return e
}

func TestCreateThenFindByID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	employee := testEmployee("E100", "Anna")
	if err := Create(ctx, store, employee); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	found, err := FindByID[models.Employee](ctx, store, "E100")
	if err != nil {
		t.Fatalf("find employee: %v", err)
	}
	if stripSurrogate(*found) != stripSurrogate(*employee) {
		t.Fatalf("expected %+v, got %+v", *employee, *found)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := FindByID[models.Employer](context.Background(), store, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, id := range []string{"E3", "E1", "E2"} {
		if err := Create(ctx, store, testEmployee(id, "Name"+id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	employees, err := List[models.Employee](ctx, store, Filter{})
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(employees))
	}
	for idx, want := range []string{"E3", "E1", "E2"} {
		if employees[idx].EmployeeID != want {
			t.Fatalf("position %d: expected %s, got %s", idx, want, employees[idx].EmployeeID)
		}
	}
}

func TestListEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	periods, err := List[models.PayrollPeriod](context.Background(), store, Filter{})
	if err != nil {
		t.Fatalf("list periods: %v", err)
	}
	if periods == nil || len(periods) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", periods)
	}
}

func TestDuplicateIdentityIsAccepted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := Create(ctx, store, testEmployee("DUP", "First")); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := Create(ctx, store, testEmployee("DUP", "Second")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	employees, err := List[models.Employee](ctx, store, Filter{})
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected both duplicates listed, got %d", len(employees))
	}

	found, err := FindByID[models.Employee](ctx, store, "DUP")
	if err != nil {
		t.Fatalf("find duplicate: %v", err)
	}
	if found.FirstName != "First" {
		t.Fatalf("expected first inserted duplicate, got %s", found.FirstName)
	}
}

func TestCreateRecomputesDerivedFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	earnings := &models.Earnings{
		EarningsID:      "ERN1",
		EmployeeID:      "E1",
		PayrollPeriodID: "P1",
		GrossEarnings:   1150,
		RegularWages:    1000,
		OvertimeWages:   100,
		Bonuses:         50,
		TotalGross:      1,
	}
	if err := Create(ctx, store, earnings); err != nil {
		t.Fatalf("create earnings: %v", err)
	}
	if earnings.TotalGross != 1150 {
		t.Fatalf("expected total_gross 1150, got %v", earnings.TotalGross)
	}

	netPay := &models.NetPay{
		NetPayID:        "NP1",
		EmployeeID:      "E1",
		PayrollPeriodID: "P1",
		TotalGross:      1150,
		TotalDeductions: 222.2,
		PaymentMethod:   "Direct Deposit",
	}
	if err := Create(ctx, store, netPay); err != nil {
		t.Fatalf("create net pay: %v", err)
	}

	stored, err := FindByID[models.NetPay](ctx, store, "NP1")
	if err != nil {
		t.Fatalf("find net pay: %v", err)
	}
	if math.Abs(stored.NetPay-927.8) > 1e-9 {
		t.Fatalf("expected stored net_pay 927.8, got %v", stored.NetPay)
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rows := []models.NetPay{
		{NetPayID: "NP1", EmployeeID: "E1", PayrollPeriodID: "P1", PaymentMethod: "Check"},
		{NetPayID: "NP2", EmployeeID: "E2", PayrollPeriodID: "P1", PaymentMethod: "Check"},
		{NetPayID: "NP3", EmployeeID: "E1", PayrollPeriodID: "P2", PaymentMethod: "Check"},
	}
	for i := range rows {
		if err := Create(ctx, store, &rows[i]); err != nil {
			t.Fatalf("create %s: %v", rows[i].NetPayID, err)
		}
	}

	byPeriod, err := List[models.NetPay](ctx, store, Filter{PayrollPeriodID: "P1"})
	if err != nil {
		t.Fatalf("list by period: %v", err)
	}
	if len(byPeriod) != 2 || byPeriod[0].NetPayID != "NP1" || byPeriod[1].NetPayID != "NP2" {
		t.Fatalf("unexpected period filter result: %+v", byPeriod)
	}

	byEmployeeAndPeriod, err := List[models.NetPay](ctx, store, Filter{EmployeeID: "E1", PayrollPeriodID: "P2"})
	if err != nil {
		t.Fatalf("list by employee and period: %v", err)
	}
	if len(byEmployeeAndPeriod) != 1 || byEmployeeAndPeriod[0].NetPayID != "NP3" {
		t.Fatalf("unexpected combined filter result: %+v", byEmployeeAndPeriod)
	}

	// NetPay has no employer_id column, so the filter is ignored.
	ignored, err := List[models.NetPay](ctx, store, Filter{EmployerID: "ER1"})
	if err != nil {
		t.Fatalf("list with inapplicable filter: %v", err)
	}
	if len(ignored) != 3 {
		t.Fatalf("expected inapplicable filter to be ignored, got %d rows", len(ignored))
	}
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := newTestStore(t)
	second := newTestStore(t)

	if err := Create(ctx, first, testEmployee("E1", "Only")); err != nil {
		t.Fatalf("create: %v", err)
	}
	employees, err := List[models.Employee](ctx, second, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected second store to be empty, got %d", len(employees))
	}
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	const workers = 8
	const perWorker = 25

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				hours := &models.WageAndHours{
					WageHoursID:     fmt.Sprintf("WH-%d-%d", w, i),
					EmployeeID:      fmt.Sprintf("E%d", w),
					PayrollPeriodID: "P1",
					RegularHours:    40,
					OvertimeRate:    models.DefaultOvertimeRate,
				}
				if err := Create(gctx, store, hours); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent create: %v", err)
	}

	entries, err := List[models.WageAndHours](ctx, store, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != workers*perWorker {
		t.Fatalf("expected %d entries, got %d", workers*perWorker, len(entries))
	}
}
