package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cafe-employee-backend/internal/model"
)

// ListEmployees returns employees, optionally restricted to the café with the
// given name, ordered by descending days worked as of now.
func (s *gormStore) ListEmployees(ctx context.Context, cafeName string, now time.Time) ([]EmployeeSummary, error) {
	query := s.db.WithContext(ctx).Preload("Cafe")
	if cafeName != "" {
		query = query.
			Joins("JOIN cafes ON cafes.id = employees.cafe_id").
			Where("cafes.name = ?", cafeName)
	}

	var employees []model.Employee
	if err := query.Order("employees.start_date").Order("employees.id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		summary := EmployeeSummary{Employee: e, DaysWorked: model.DaysWorked(e.StartDate, now)}
		if e.Cafe != nil {
			summary.CafeName = e.Cafe.Name
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DaysWorked > summaries[j].DaysWorked
	})
	return summaries, nil
}

// CreateEmployee inserts a new employee assigned to an existing café.
func (s *gormStore) CreateEmployee(ctx context.Context, in NewEmployee) (*model.Employee, error) {
	cafeID := in.CafeID
	employee := model.Employee{
		Name:         in.Name,
		EmailAddress: in.EmailAddress,
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		StartDate:    in.StartDate,
		CafeID:       &cafeID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCafe(tx, cafeID); err != nil {
			return err
		}

		id, err := allocateEmployeeID(tx)
		if err != nil {
			return err
		}
		employee.ID = id

		return tx.Omit(clause.Associations).Create(&employee).Error
	})
	if err != nil {
		return nil, wrapWriteErr("failed to create employee", err)
	}
	return &employee, nil
}

// allocateEmployeeID draws ids until one is unused, giving up after
// maxEmployeeIDAttempts collisions.
func allocateEmployeeID(tx *gorm.DB) (string, error) {
	for attempt := 1; attempt <= maxEmployeeIDAttempts; attempt++ {
		id := model.NewEmployeeID()
		var n int64
		if err := tx.Model(&model.Employee{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return "", fmt.Errorf("failed to check employee id %s: %w", id, err)
		}
		if n == 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique employee id after %d attempts", maxEmployeeIDAttempts)
}

// GetEmployee loads one employee by id.
func (s *gormStore) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return findEmployee(s.db.WithContext(ctx), id)
}

// UpdateEmployee overwrites the fields present in patch. A patch naming an
// unknown café fails as a whole.
func (s *gormStore) UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) (*model.Employee, error) {
	var updated *model.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		employee, err := findEmployee(tx, id)
		if err != nil {
			return err
		}

		if patch.CafeID != nil {
			if _, err := findCafe(tx, *patch.CafeID); err != nil {
				return err
			}
			cafeID := *patch.CafeID
			employee.CafeID = &cafeID
		}
		if patch.Name != nil {
			employee.Name = *patch.Name
		}
		if patch.EmailAddress != nil {
			employee.EmailAddress = *patch.EmailAddress
		}
		if patch.PhoneNumber != nil {
			employee.PhoneNumber = *patch.PhoneNumber
		}
		if patch.Gender != nil {
			employee.Gender = *patch.Gender
		}
		if patch.StartDate != nil {
			employee.StartDate = *patch.StartDate
		}

		if err := tx.Omit(clause.Associations).Save(employee).Error; err != nil {
			return err
		}
		updated = employee
		return nil
	})
	if err != nil {
		return nil, wrapWriteErr(fmt.Sprintf("failed to update employee %s", id), err)
	}
	return updated, nil
}

// DeleteEmployee removes a single employee.
func (s *gormStore) DeleteEmployee(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Employee{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete employee %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrEmployeeNotFound
		}
		return nil
	})
}

func findEmployee(tx *gorm.DB, id string) (*model.Employee, error) {
	var employee model.Employee
	if err := tx.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to fetch employee %s: %w", id, err)
	}
	return &employee, nil
}
