// Package seed fills a freshly reset database with demo cafés and employees.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cafe-employee-backend/internal/db"
	"cafe-employee-backend/internal/model"
)

type cafeSeed struct {
	Name        string
	Description string
	Logo        string
	Location    string
}

type employeeSeed struct {
	Name      string
	Email     string
	Phone     string
	Gender    string
	StartDate time.Time
	Cafe      int // index into cafes
}

var cafes = []cafeSeed{
	{"Cafe 1", "The best coffee in town", "cafe1.png", "Main Street"},
	{"Cafe 2", "Where coffee meets creativity", "cafe2.png", "Market Square"},
	{"Cafe 3", "Hip spot with artisanal coffee", "cafe3.png", "Downtown"},
	{"Cafe 4", "Quick and quality espresso", "cafe4.png", "City Center"},
}

var employees = []employeeSeed{
	{"John Doe", "john.doe@example.com", "91234567", "Male", date(2022, time.January, 1), 0},
	{"Jane Smith", "jane.smith@example.com", "81234567", "Female", date(2022, time.February, 15), 1},
	{"Mike Johnson", "mike.johnson@example.com", "81234567", "Male", date(2022, time.March, 10), 2},
	{"Emily Davis", "emily.davis@example.com", "91234567", "Female", date(2022, time.April, 20), 3},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Result counts the rows written by Run.
type Result struct {
	Cafes     int
	Employees int
}

// Run drops and recreates the schema, then inserts the demo data in one
// transaction.
func Run(ctx context.Context, gormDB *gorm.DB) (*Result, error) {
	if err := db.Reset(gormDB.WithContext(ctx)); err != nil {
		return nil, err
	}

	result := &Result{}
	err := gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := make([]model.Cafe, 0, len(cafes))
		for _, c := range cafes {
			logo := c.Logo
			cafe := model.Cafe{Name: c.Name, Description: c.Description, Logo: &logo, Location: c.Location}
			if err := tx.Create(&cafe).Error; err != nil {
				return fmt.Errorf("failed to seed cafe %q: %w", c.Name, err)
			}
			created = append(created, cafe)
		}
		result.Cafes = len(created)

		for _, e := range employees {
			cafeID := created[e.Cafe].ID
			employee := model.Employee{
				Name:         e.Name,
				EmailAddress: e.Email,
				PhoneNumber:  e.Phone,
				Gender:       e.Gender,
				StartDate:    e.StartDate,
				CafeID:       &cafeID,
			}
			if err := tx.Omit(clause.Associations).Create(&employee).Error; err != nil {
				return fmt.Errorf("failed to seed employee %q: %w", e.Name, err)
			}
			result.Employees++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Seeded %d cafes and %d employees.", result.Cafes, result.Employees)
	return result, nil
}
