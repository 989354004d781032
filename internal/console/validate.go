package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

// Validators return a typed value or an error; whether to re-prompt is the
// shell's decision, not theirs.

// ParseInt parses a whole number and checks the inclusive range.
func ParseInt(s string, min, max int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("input cannot be empty")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid input, please enter digits only")
	}
	if v < min || v > max {
		return 0, fmt.Errorf("please enter a value between %d and %d", min, max)
	}
	return v, nil
}

// ParseFloat parses a numeric value and checks the inclusive range.
func ParseFloat(s string, min, max float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("input cannot be empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid input, please enter a numeric value")
	}
	if v < min || v > max {
		return 0, fmt.Errorf("please enter a value between %.1f and %.1f", min, max)
	}
	return v, nil
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, errors.New("invalid date, use format dd/mm/yyyy with valid values")
	}
	return d, nil
}

// ValidateName checks a driver name: non-empty and containing at least one
// non-digit character. The result is bounded to the stored name length.
func ValidateName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("name cannot be empty")
	}
	if allDigits(s) {
		return "", errors.New("name cannot be only numbers, please enter a proper name")
	}
	return model.TruncateName(s), nil
}

// ValidateCode checks a bus code for emptiness and returns it normalized
// to the stored upper-case, bounded form.
func ValidateCode(s string) (string, error) {
	code := model.NormalizeCode(s)
	if code == "" {
		return "", errors.New("code cannot be empty")
	}
	return code, nil
}

func allDigits(s string) bool {
	hasDigit := false
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasDigit
}
