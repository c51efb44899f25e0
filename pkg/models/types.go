package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies one of the three settings resources. Each category
// has its own form fields, validation rules and backend endpoints.
type Category string

const (
	CategoryDatabase Category = "database"
	CategoryEmail    Category = "email"
	CategorySMS      Category = "sms"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryDatabase, CategoryEmail, CategorySMS}
}

// ParseCategory converts a user-supplied string to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "database", "db":
		return CategoryDatabase, nil
	case "email", "mail":
		return CategoryEmail, nil
	case "sms":
		return CategorySMS, nil
	default:
		return "", fmt.Errorf("unknown settings category: %s (must be: database, email, or sms)", s)
	}
}

// Title returns the section heading used in the UI.
func (c Category) Title() string {
	switch c {
	case CategoryDatabase:
		return "Database Settings"
	case CategoryEmail:
		return "Email Settings"
	case CategorySMS:
		return "SMS Settings"
	default:
		return string(c)
	}
}

// DatabaseSetting is a saved database connection record.
type DatabaseSetting struct {
	ID           int    `json:"id" yaml:"id"`
	DatabaseName string `json:"databaseName" yaml:"database_name"`
	Username     string `json:"username" yaml:"username"`
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	Password     string `json:"password,omitempty" yaml:"-"`
}

// EmailSetting is a saved SMTP configuration record.
type EmailSetting struct {
	ID        int    `json:"id" yaml:"id"`
	SMTPHost  string `json:"smtpHost" yaml:"smtp_host"`
	SMTPPort  int    `json:"smtpPort" yaml:"smtp_port"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password,omitempty" yaml:"-"`
	FromEmail string `json:"fromEmail" yaml:"from_email"`
	ToEmail   string `json:"toEmail,omitempty" yaml:"to_email,omitempty"`
}

// SMSSetting is a saved SMS provider configuration record.
type SMSSetting struct {
	ID         int    `json:"id" yaml:"id"`
	Provider   string `json:"provider" yaml:"provider"`
	FromNumber string `json:"fromNumber" yaml:"from_number"`
	ToNumber   string `json:"toNumber,omitempty" yaml:"to_number,omitempty"`
	APIKey     string `json:"apiKey" yaml:"api_key"`
	APISecret  string `json:"apiSecret,omitempty" yaml:"-"`
}

// SettingRecord is the category-agnostic view of a saved record, used by
// the form workflow and the saved-list panes. Values are keyed by field
// name and hold display strings; secret fields are never included.
type SettingRecord struct {
	ID     int
	Values map[string]string
}

// Record converts the typed setting to its generic form.
func (s DatabaseSetting) Record() SettingRecord {
	return SettingRecord{
		ID: s.ID,
		Values: map[string]string{
			FieldDatabaseName: s.DatabaseName,
			FieldUsername:     s.Username,
			FieldHost:         s.Host,
			FieldPort:         strconv.Itoa(s.Port),
		},
	}
}

// Record converts the typed setting to its generic form.
func (s EmailSetting) Record() SettingRecord {
	return SettingRecord{
		ID: s.ID,
		Values: map[string]string{
			FieldSMTPHost:  s.SMTPHost,
			FieldSMTPPort:  strconv.Itoa(s.SMTPPort),
			FieldUsername:  s.Username,
			FieldFromEmail: s.FromEmail,
			FieldToEmail:   s.ToEmail,
		},
	}
}

// Record converts the typed setting to its generic form.
func (s SMSSetting) Record() SettingRecord {
	return SettingRecord{
		ID: s.ID,
		Values: map[string]string{
			FieldProvider:   s.Provider,
			FieldFromNumber: s.FromNumber,
			FieldToNumber:   s.ToNumber,
			FieldAPIKey:     s.APIKey,
		},
	}
}

// Summary returns a one-line description of the record suitable for
// status messages and clipboard copies.
func (r SettingRecord) Summary(cat Category) string {
	switch cat {
	case CategoryDatabase:
		return fmt.Sprintf("%s@%s:%s/%s",
			r.Values[FieldUsername], r.Values[FieldHost], r.Values[FieldPort], r.Values[FieldDatabaseName])
	case CategoryEmail:
		return fmt.Sprintf("%s:%s (from %s)",
			r.Values[FieldSMTPHost], r.Values[FieldSMTPPort], r.Values[FieldFromEmail])
	case CategorySMS:
		return fmt.Sprintf("%s via %s", r.Values[FieldFromNumber], r.Values[FieldProvider])
	default:
		return fmt.Sprintf("record #%d", r.ID)
	}
}
