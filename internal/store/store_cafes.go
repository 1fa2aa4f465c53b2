package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"cafe-employee-backend/internal/model"
)

// ListCafes returns cafés, optionally restricted to one location, ordered by
// descending employee count. Cafés with equal counts keep id order.
func (s *gormStore) ListCafes(ctx context.Context, location string) ([]CafeSummary, error) {
	db := s.db.WithContext(ctx)

	query := db.Order("id")
	if location != "" {
		query = query.Where("location = ?", location)
	}
	var cafes []model.Cafe
	if err := query.Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}
	if len(cafes) == 0 {
		return nil, nil
	}

	ids := make([]string, len(cafes))
	for i, c := range cafes {
		ids[i] = c.ID
	}

	type countRow struct {
		CafeID        string
		EmployeeCount int64
	}
	var counts []countRow
	if err := db.
		Model(&model.Employee{}).
		Select("cafe_id AS cafe_id, COUNT(*) AS employee_count").
		Where("cafe_id IN ?", ids).
		Group("cafe_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees per cafe: %w", err)
	}

	countMap := make(map[string]int64, len(counts))
	for _, c := range counts {
		countMap[c.CafeID] = c.EmployeeCount
	}

	summaries := make([]CafeSummary, 0, len(cafes))
	for _, c := range cafes {
		summaries = append(summaries, CafeSummary{Cafe: c, EmployeeCount: countMap[c.ID]})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].EmployeeCount > summaries[j].EmployeeCount
	})
	return summaries, nil
}

// CreateCafe inserts a new café with a generated UUID.
func (s *gormStore) CreateCafe(ctx context.Context, in NewCafe) (*model.Cafe, error) {
	cafe := model.Cafe{
		Name:        in.Name,
		Description: in.Description,
		Logo:        in.Logo,
		Location:    in.Location,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cafe).Error
	})
	if err != nil {
		return nil, wrapWriteErr("failed to create cafe", err)
	}
	return &cafe, nil
}

// GetCafe loads one café by id.
func (s *gormStore) GetCafe(ctx context.Context, id string) (*model.Cafe, error) {
	if !model.IsValidCafeID(id) {
		return nil, ErrInvalidCafeID
	}
	return findCafe(s.db.WithContext(ctx), id)
}

// UpdateCafe overwrites the fields present in patch.
func (s *gormStore) UpdateCafe(ctx context.Context, id string, patch CafePatch) (*model.Cafe, error) {
	if !model.IsValidCafeID(id) {
		return nil, ErrInvalidCafeID
	}

	var updated *model.Cafe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cafe, err := findCafe(tx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			cafe.Name = *patch.Name
		}
		if patch.Description != nil {
			cafe.Description = *patch.Description
		}
		switch {
		case patch.ClearLogo:
			cafe.Logo = nil
		case patch.Logo != nil:
			cafe.Logo = patch.Logo
		}
		if patch.Location != nil {
			cafe.Location = *patch.Location
		}

		if err := tx.Save(cafe).Error; err != nil {
			return err
		}
		updated = cafe
		return nil
	})
	if err != nil {
		return nil, wrapWriteErr(fmt.Sprintf("failed to update cafe %s", id), err)
	}
	return updated, nil
}

// DeleteCafe removes a café and every employee assigned to it in one
// transaction. It returns the number of employees removed.
func (s *gormStore) DeleteCafe(ctx context.Context, id string) (int64, error) {
	if !model.IsValidCafeID(id) {
		return 0, ErrInvalidCafeID
	}

	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cafe, err := findCafe(tx, id)
		if err != nil {
			return err
		}

		res := tx.Where("cafe_id = ?", id).Delete(&model.Employee{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete employees of cafe %s: %w", id, res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(cafe).Error; err != nil {
			return fmt.Errorf("failed to delete cafe %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func findCafe(tx *gorm.DB, id string) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := tx.First(&cafe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("failed to fetch cafe %s: %w", id, err)
	}
	return &cafe, nil
}

// wrapWriteErr adds context to unexpected errors while passing validation and
// not-found errors through unchanged for the caller to classify.
func wrapWriteErr(msg string, err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) || errors.Is(err, ErrCafeNotFound) || errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
