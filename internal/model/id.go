package model

import "math/rand"

const (
	employeeIDPrefix   = "UI"
	employeeIDSuffix   = 7
	employeeIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewEmployeeID returns "UI" followed by 7 random uppercase letters or digits.
func NewEmployeeID() string {
	b := make([]byte, len(employeeIDPrefix)+employeeIDSuffix)
	copy(b, employeeIDPrefix)
	for i := len(employeeIDPrefix); i < len(b); i++ {
		b[i] = employeeIDAlphabet[rand.Intn(len(employeeIDAlphabet))]
	}
	return string(b)
}
