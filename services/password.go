package services

import (
	"strings"
)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

type PasswordChecks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

// PasswordStrength is the outcome of the strength check.
type PasswordStrength struct {
	Checks   PasswordChecks `json:"checks"`
	Score    int            `json:"score"`
	Strength string         `json:"strength"`
	Label    string         `json:"label"`
	Valid    bool           `json:"isValid"`
}

// ValidatePasswordStrength scores one point per passing check. Three points are required.
func ValidatePasswordStrength(password string) PasswordStrength {
	checks := PasswordChecks{
		Length:    len(password) >= 8,
		Uppercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		Lowercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		Number:    strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		Special:   strings.ContainsAny(password, passwordSpecials),
	}

	score := 0
	for _, ok := range []bool{checks.Length, checks.Uppercase, checks.Lowercase, checks.Number, checks.Special} {
		if ok {
			score++
		}
	}

	result := PasswordStrength{Checks: checks, Score: score, Strength: "weak", Label: "Svak"}
	switch {
	case score >= 4:
		result.Strength, result.Label = "strong", "Sterk"
	case score == 3:
		result.Strength, result.Label = "medium", "Middels"
	}
	result.Valid = score >= 3
	return result
}
