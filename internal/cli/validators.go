package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateRecordID parses a positive record id argument
func ValidateRecordID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id: %s (must be a positive integer)", arg)
	}
	return id, nil
}

// ParseFieldAssignment splits a field=value flag argument
func ParseFieldAssignment(arg string) (string, string, error) {
	name, value, found := strings.Cut(arg, "=")
	if !found || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("invalid field assignment: %s (expected field=value)", arg)
	}
	return strings.TrimSpace(name), value, nil
}
