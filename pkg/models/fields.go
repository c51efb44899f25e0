package models

// Field names, shared between the form workflow and the API payloads.
// They match the JSON keys the backend expects.
const (
	FieldDatabaseName = "databaseName"
	FieldUsername     = "username"
	FieldHost         = "host"
	FieldPort         = "port"
	FieldPassword     = "password"

	FieldSMTPHost  = "smtpHost"
	FieldSMTPPort  = "smtpPort"
	FieldFromEmail = "fromEmail"
	FieldToEmail   = "toEmail"

	FieldProvider   = "provider"
	FieldFromNumber = "fromNumber"
	FieldToNumber   = "toNumber"
	FieldAPIKey     = "apiKey"
	FieldAPISecret  = "apiSecret"
)

// FieldKind selects the format rule applied to a field value.
type FieldKind int

const (
	KindText FieldKind = iota
	KindPort
	KindEmail
	KindPassword
	KindPhone
)

// FieldSpec describes one form field of a settings category.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	Kind        FieldKind
	Secret      bool // masked in the UI, never pre-filled on edit
}

var databaseFields = []FieldSpec{
	{Name: FieldDatabaseName, Label: "Database Name", Placeholder: "Enter database name", Required: true},
	{Name: FieldUsername, Label: "Username", Placeholder: "Database username", Required: true},
	{Name: FieldHost, Label: "Host", Placeholder: "localhost", Required: true},
	{Name: FieldPort, Label: "Port", Placeholder: "5432", Required: true, Kind: KindPort},
	{Name: FieldPassword, Label: "Password", Required: true, Kind: KindPassword, Secret: true},
}

var emailFields = []FieldSpec{
	{Name: FieldSMTPHost, Label: "SMTP Host", Placeholder: "smtp.gmail.com", Required: true},
	{Name: FieldSMTPPort, Label: "SMTP Port", Placeholder: "587", Required: true, Kind: KindPort},
	{Name: FieldUsername, Label: "Username", Placeholder: "Email username", Required: true},
	{Name: FieldPassword, Label: "Password", Required: true, Kind: KindPassword, Secret: true},
	{Name: FieldFromEmail, Label: "From Email", Placeholder: "noreply@myapp.com", Required: true, Kind: KindEmail},
	{Name: FieldToEmail, Label: "To Email", Placeholder: "support@myapp.com", Kind: KindEmail},
}

var smsFields = []FieldSpec{
	{Name: FieldProvider, Label: "Provider", Placeholder: "twilio", Required: true},
	{Name: FieldFromNumber, Label: "From Number", Placeholder: "+1234567890", Required: true, Kind: KindPhone},
	{Name: FieldToNumber, Label: "To Number", Placeholder: "+1987654321", Kind: KindPhone},
	{Name: FieldAPIKey, Label: "API Key", Placeholder: "Api key", Required: true},
	{Name: FieldAPISecret, Label: "API Secret", Required: true, Secret: true},
}

// FieldsFor returns the form fields of a category in display order.
func FieldsFor(cat Category) []FieldSpec {
	switch cat {
	case CategoryDatabase:
		return databaseFields
	case CategoryEmail:
		return emailFields
	case CategorySMS:
		return smsFields
	default:
		return nil
	}
}

// SMSProviders lists the providers offered by the SMS section.
func SMSProviders() []string {
	return []string{"twilio", "nexmo", "aws-sns"}
}
