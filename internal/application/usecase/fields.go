package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crimsng/crims-api/internal/domain"
)

// Forms arrive as strings; these helpers parse and range-check them, mapping
// failures onto domain.ErrInvalidInput so handlers answer 400.

var phonePattern = regexp.MustCompile(`^\d{11}$`)

// parseDate accepts the HTML date format (2006-01-02) or RFC 3339.
// An empty value clears the field.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD)", domain.ErrInvalidInput, field)
}

// parseAge enforces the 0-150 range.
func parseAge(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: age must be a number", domain.ErrInvalidInput)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: age cannot be negative", domain.ErrInvalidInput)
	}
	if n > 150 {
		return nil, fmt.Errorf("%w: age cannot be more than 150", domain.ErrInvalidInput)
	}
	return &n, nil
}

// parseMeasure parses a non-negative numeric field (height, weight).
func parseMeasure(field, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, field)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidInput, field)
	}
	return &d, nil
}

// checkPhone validates the 11-digit local phone format. Empty is allowed.
func checkPhone(s string) error {
	if s == "" {
		return nil
	}
	if !phonePattern.MatchString(s) {
		return fmt.Errorf("%w: phone must be an 11-digit number", domain.ErrInvalidInput)
	}
	return nil
}
