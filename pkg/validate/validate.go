// Package validate holds the field-level format rules applied to
// settings and signup form input. Every check takes the raw string the
// user typed and returns "" when the value is acceptable, or a
// human-readable message otherwise. Checks are pure: no IO, no state.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

const (
	portMin = 1
	portMax = 65535

	// UI constraint carried over from the web console; not a password
	// strength policy.
	passwordMinLen = 6
	passwordMaxLen = 12
)

var (
	// local@domain.tld with no whitespace and a dot after the "@".
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// E.164-ish: optional "+", first digit 1-9, up to 14 more digits.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,14}$`)
)

// Required checks that a value is present and not whitespace-only.
func Required(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", label)
	}
	return ""
}

// Port checks that a value parses as a TCP port number.
func Port(value string) string {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < portMin || n > portMax {
		return fmt.Sprintf("Port must be a number between %d and %d", portMin, portMax)
	}
	return ""
}

// Email checks that a value looks like an email address.
func Email(value string) string {
	if !emailPattern.MatchString(value) {
		return "Enter a valid email address"
	}
	return ""
}

// Password checks the UI length constraint on password fields.
func Password(value string) string {
	if len(value) < passwordMinLen || len(value) > passwordMaxLen {
		return fmt.Sprintf("Password must be %d-%d characters", passwordMinLen, passwordMaxLen)
	}
	return ""
}

// PhoneNumber checks that a value looks like an international phone
// number.
func PhoneNumber(value string) string {
	if !phonePattern.MatchString(value) {
		return "Enter a valid phone number"
	}
	return ""
}

// Field applies the rules of a field spec to a value. Required fields
// fail on empty input; optional fields skip format checks while empty.
func Field(spec models.FieldSpec, value string) string {
	if strings.TrimSpace(value) == "" {
		if spec.Required {
			return Required(value, spec.Label)
		}
		return ""
	}
	switch spec.Kind {
	case models.KindPort:
		return Port(value)
	case models.KindEmail:
		return Email(value)
	case models.KindPassword:
		return Password(value)
	case models.KindPhone:
		return PhoneNumber(value)
	default:
		return ""
	}
}
