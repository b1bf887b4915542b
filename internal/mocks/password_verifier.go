package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison succeeds
	ShouldSucceed bool

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// PlainHasher implements auth.PasswordHasher without bcrypt cost, for
// tests that register actors.
type PlainHasher struct{}

// Hash implements the auth.PasswordHasher interface.
func (PlainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
