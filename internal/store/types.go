package store

import (
	"errors"
	"time"

	"cafe-employee-backend/internal/model"
)

var (
	// ErrCafeNotFound is returned when a café id does not match any record.
	ErrCafeNotFound = errors.New("cafe not found")
	// ErrEmployeeNotFound is returned when an employee id does not match any record.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidCafeID is returned when a café id is not shaped like a UUID.
	ErrInvalidCafeID = errors.New("invalid cafe id format")
)

// CafeSummary is a café together with the number of employees assigned to it.
type CafeSummary struct {
	model.Cafe
	EmployeeCount int64
}

// EmployeeSummary is an employee with its tenure and resolved café name.
type EmployeeSummary struct {
	model.Employee
	DaysWorked int
	CafeName   string
}

// NewCafe carries the fields accepted when creating a café.
type NewCafe struct {
	Name        string
	Description string
	Logo        *string
	Location    string
}

// CafePatch holds the café fields to overwrite; nil fields are left untouched.
// ClearLogo removes the logo and takes precedence over Logo.
type CafePatch struct {
	Name        *string
	Description *string
	Logo        *string
	ClearLogo   bool
	Location    *string
}

// NewEmployee carries the fields accepted when creating an employee.
// A zero StartDate defaults to the current time.
type NewEmployee struct {
	Name         string
	EmailAddress string
	PhoneNumber  string
	Gender       string
	StartDate    time.Time
	CafeID       string
}

// EmployeePatch holds the employee fields to overwrite; nil fields are left untouched.
type EmployeePatch struct {
	Name         *string
	EmailAddress *string
	PhoneNumber  *string
	Gender       *string
	StartDate    *time.Time
	CafeID       *string
}
