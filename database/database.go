package database

import (
	"fmt"
	"log"

	"payroll/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the process-local record store. Each Store owns a private
// in-memory SQLite database that starts empty and is discarded on Close.
type Store struct {
	db   *gorm.DB
	name string
}

type Options struct {
	LogSQL bool
}

func Open(opts Options) (*Store, error) {
	logMode := logger.Silent
	if opts.LogSQL {
		logMode = logger.Info
	}

	name := "payroll-" + uuid.NewString()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection keeps the in-memory database alive and serializes
	// every statement against it.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Employer{},
		&models.PayrollPeriod{},
		&models.WageAndHours{},
		&models.Earnings{},
		&models.WithholdingsAndDeductions{},
		&models.NetPay{},
		&models.TaxReporting{},
	)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	log.Printf("Record store %s ready", name)
	return &Store{db: db, name: name}, nil
}

// Close releases the connection, which discards every stored record.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close store %s: %w", s.name, err)
	}
	return nil
}
