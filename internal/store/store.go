package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cafe-employee-backend/internal/model"
)

// maxEmployeeIDAttempts bounds how often a colliding employee id is regenerated.
const maxEmployeeIDAttempts = 5

// Store defines the interface for all database operations.
type Store interface {
	ListCafes(ctx context.Context, location string) ([]CafeSummary, error)
	CreateCafe(ctx context.Context, in NewCafe) (*model.Cafe, error)
	GetCafe(ctx context.Context, id string) (*model.Cafe, error)
	UpdateCafe(ctx context.Context, id string, patch CafePatch) (*model.Cafe, error)
	DeleteCafe(ctx context.Context, id string) (int64, error)

	ListEmployees(ctx context.Context, cafeName string, now time.Time) ([]EmployeeSummary, error)
	CreateEmployee(ctx context.Context, in NewEmployee) (*model.Employee, error)
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Ping checks that the underlying database is reachable.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
