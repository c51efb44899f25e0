package models

// Settings represents the console configuration
type Settings struct {
	API APISettings `yaml:"api"`
	UI  UISettings  `yaml:"ui"`
}

// APISettings configures the backend connection
type APISettings struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// UISettings controls UI preferences
type UISettings struct {
	PageSize       int    `yaml:"page_size"`
	DefaultSection string `yaml:"default_section"` // "database", "email" or "sms"
	AdminName      string `yaml:"admin_name"`
}

// DefaultSettings returns the default configuration. The base URL is
// deliberately empty: it must come from the config file, .env or the
// environment.
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL:        "",
			TimeoutSeconds: 30,
		},
		UI: UISettings{
			PageSize:       2,
			DefaultSection: string(CategoryDatabase),
			AdminName:      "Admin",
		},
	}
}
