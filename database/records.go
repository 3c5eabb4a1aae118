package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Record is implemented by every stored entity. IdentityColumn names the
// caller-supplied identity field, which is not unique.
type Record interface {
	TableName() string
	IdentityColumn() string
}

// computed is implemented by records with a derived field that must be set
// before the record is stored.
type computed interface {
	Recompute()
}

// Filter narrows List to records whose cross-reference columns match. Empty
// values are ignored, as are columns the entity does not carry.
type Filter struct {
	EmployeeID      string
	EmployerID      string
	PayrollPeriodID string
}

// Create appends record unconditionally. Identity fields are neither checked
// for uniqueness nor resolved against other collections.
func Create[T Record](ctx context.Context, s *Store, record *T) error {
	if c, ok := any(record).(computed); ok {
		c.Recompute()
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create %s: %w", (*record).TableName(), err)
	}
	return nil
}

// FindByID returns the earliest inserted record whose identity equals id.
func FindByID[T Record](ctx context.Context, s *Store, id string) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).
		Where(record.IdentityColumn()+" = ?", id).
		Order("id asc").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s %q: %w", record.TableName(), id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %q: %w", record.TableName(), id, err)
	}
	return &record, nil
}

// List returns the collection in insertion order.
func List[T Record](ctx context.Context, s *Store, filter Filter) ([]T, error) {
	var zero T
	query := s.db.WithContext(ctx).Model(&zero)

	if filter.EmployeeID != "" && hasColumn[T](s, "employee_id") {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.EmployerID != "" && hasColumn[T](s, "employer_id") {
		query = query.Where("employer_id = ?", filter.EmployerID)
	}
	if filter.PayrollPeriodID != "" && hasColumn[T](s, "payroll_period_id") {
		query = query.Where("payroll_period_id = ?", filter.PayrollPeriodID)
	}

	records := []T{}
	if err := query.Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", zero.TableName(), err)
	}
	return records, nil
}

func hasColumn[T Record](s *Store, column string) bool {
	var zero T
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(&zero); err != nil {
		return false
	}
	_, ok := stmt.Schema.FieldsByDBName[column]
	return ok
}
