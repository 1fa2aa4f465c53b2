package model

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployeeID(t *testing.T) {
	format := regexp.MustCompile(`^UI[A-Z0-9]{7}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewEmployeeID()
		assert.Regexp(t, format, id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 990, "ids should be spread across the alphabet")
}

func TestValidatePhoneNumber(t *testing.T) {
	testCases := []struct {
		phone   string
		wantErr bool
	}{
		{"81234567", false},
		{"91234567", false},
		{"71234567", true},
		{"8123456", true},
		{"912345678", true},
		{"", true},
		{"8ééé1", true},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			err := ValidatePhoneNumber(tc.phone)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "phone_number", ve.Field)
		})
	}
}

func validEmployee() Employee {
	return Employee{
		Name:         "John Doe",
		EmailAddress: "john.doe@example.com",
		PhoneNumber:  "91234567",
		Gender:       "Male",
	}
}

func TestEmployee_Validate(t *testing.T) {
	e := validEmployee()
	assert.NoError(t, e.Validate())

	e = validEmployee()
	e.Gender = "NotAGenderValue"
	assert.Error(t, e.Validate(), "gender is limited to 10 characters")

	e = validEmployee()
	e.Name = strings.Repeat("n", 101)
	assert.Error(t, e.Validate())

	e = validEmployee()
	e.EmailAddress = ""
	assert.Error(t, e.Validate())
}

func TestCafe_Validate(t *testing.T) {
	logo := strings.Repeat("l", 257)
	testCases := []struct {
		name    string
		cafe    Cafe
		wantErr bool
	}{
		{"minimal", Cafe{Name: "A", Location: "X"}, false},
		{"blank name", Cafe{Name: " ", Location: "X"}, true},
		{"missing location", Cafe{Name: "A"}, true},
		{"long description", Cafe{Name: "A", Location: "X", Description: strings.Repeat("d", 257)}, true},
		{"long logo", Cafe{Name: "A", Location: "X", Logo: &logo}, true},
		{"multibyte name at limit", Cafe{Name: strings.Repeat("é", 100), Location: "X"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cafe.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidCafeID(t *testing.T) {
	assert.True(t, IsValidCafeID("3f1c2a9e-8d5b-4c1e-9a7f-2b6d4e8c0a11"))
	assert.False(t, IsValidCafeID("not-a-uuid"))
	assert.False(t, IsValidCafeID(""))
}

func TestDaysWorked(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysWorked(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, DaysWorked(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -1, DaysWorked(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 366, DaysWorked(time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), now))
}
