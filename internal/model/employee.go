package model

import (
	"math"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Employee represents a staff member, optionally assigned to one café.
type Employee struct {
	ID           string    `gorm:"primaryKey;size:9"`
	Name         string    `gorm:"size:100;not null"`
	EmailAddress string    `gorm:"size:100;not null"`
	PhoneNumber  string    `gorm:"size:8;not null"`
	Gender       string    `gorm:"size:10;not null"`
	StartDate    time.Time `gorm:"not null;index"`
	CafeID       *string   `gorm:"size:36;index"`

	// Associations
	Cafe *Cafe `gorm:"foreignKey:CafeID"`
}

// BeforeSave enforces the field rules on every insert and update.
func (e *Employee) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}

// BeforeCreate fills in the generated id and the default start date.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewEmployeeID()
	}
	if e.StartDate.IsZero() {
		e.StartDate = time.Now().UTC()
	}
	return nil
}

// Validate checks the employee's fields, including the phone number format.
func (e *Employee) Validate() error {
	if err := requireText("name", e.Name, 100); err != nil {
		return err
	}
	if err := requireText("email_address", e.EmailAddress, 100); err != nil {
		return err
	}
	if err := ValidatePhoneNumber(e.PhoneNumber); err != nil {
		return err
	}
	return requireText("gender", e.Gender, 10)
}

// ValidatePhoneNumber requires exactly 8 characters starting with 8 or 9.
func ValidatePhoneNumber(phone string) error {
	if utf8.RuneCountInString(phone) != 8 || (phone[0] != '8' && phone[0] != '9') {
		return &ValidationError{
			Field:   "phone_number",
			Message: "Phone number must start with 8 or 9 and be 8 digits long",
		}
	}
	return nil
}

// DaysWorked returns the whole number of days between start and now.
// A start date in the future yields a negative count.
func DaysWorked(start, now time.Time) int {
	return int(math.Floor(now.Sub(start).Hours() / 24))
}
