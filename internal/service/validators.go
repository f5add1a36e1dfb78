package service

import (
	"fmt"
	"strings"
	"unicode"
)

// commonPasswords is a short deny-list of frequently breached passwords.
// Matching is case-insensitive.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"qwerty123":   {},
	"12345678":    {},
	"123456789":   {},
	"letmein123":  {},
	"iloveyou1":   {},
	"admin123":    {},
	"welcome1":    {},
}

// PasswordPolicy is the strength policy applied at registration, password
// change, and password reset.
type PasswordPolicy struct {
	MinLength int
}

// Validate checks a candidate password against the policy: minimum length,
// not purely numeric, not on the common-password list, and not containing
// the username or the email local part.
func (p PasswordPolicy) Validate(password, username, email string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("password must be at least %d characters", p.MinLength)
	}

	if isAllDigits(password) {
		return fmt.Errorf("password cannot be entirely numeric")
	}

	lowered := strings.ToLower(password)
	if _, ok := commonPasswords[lowered]; ok {
		return fmt.Errorf("password is too common")
	}

	if username != "" && strings.Contains(lowered, strings.ToLower(username)) {
		return fmt.Errorf("password is too similar to the username")
	}

	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		if strings.Contains(lowered, strings.ToLower(local)) {
			return fmt.Errorf("password is too similar to the email address")
		}
	}

	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// ValidateDiscount checks the discount percentage bound (0, 100]
func ValidateDiscount(percent int64) error {
	if percent <= 0 || percent > 100 {
		return fmt.Errorf("discount must be between 1 and 100, got %d", percent)
	}

	return nil
}

// ProductInput is an unvalidated candidate product record. Price is a
// pointer so a missing field is distinguishable from an explicit zero.
type ProductInput struct {
	Price       *int64 `json:"price"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ValidateProductInput checks required fields, returning one message per
// failing field keyed by field name.
func ValidateProductInput(input ProductInput) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if input.Price == nil {
		fieldErrors["price"] = "price is required and must be numeric"
	} else if *input.Price < 0 {
		fieldErrors["price"] = "price cannot be negative"
	}
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors["description"] = "description is required"
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}
