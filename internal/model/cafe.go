package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cafe represents a café location. Its employees are found through
// Employee.CafeID rather than a collection on this struct.
type Cafe struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:256;not null" json:"description"`
	Logo        *string `gorm:"size:256" json:"logo"`
	Location    string  `gorm:"size:100;not null;index" json:"location"`
}

// BeforeSave rejects cafés that break the column rules.
func (c *Cafe) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

// BeforeCreate assigns a fresh UUID when none is set.
func (c *Cafe) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Validate checks the café's fields against their length and presence rules.
func (c *Cafe) Validate() error {
	if err := requireText("name", c.Name, 100); err != nil {
		return err
	}
	if err := maxLength("description", c.Description, 256); err != nil {
		return err
	}
	if c.Logo != nil {
		if err := maxLength("logo", *c.Logo, 256); err != nil {
			return err
		}
	}
	return requireText("location", c.Location, 100)
}

// IsValidCafeID reports whether id is shaped like a UUID.
func IsValidCafeID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
