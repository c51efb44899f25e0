package models

// Role describes an access role shown on the roles page. The data is
// static: role management is presentation-only until the backend grows
// a roles resource.
type Role struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Users       int      `json:"users" yaml:"users"`
	CreatedOn   string   `json:"createdOn" yaml:"created_on"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// DefaultRoles returns the built-in role definitions.
func DefaultRoles() []Role {
	return []Role{
		{
			ID:          1,
			Name:        "Administrator",
			Description: "Full system access with all administrative privileges including user management, system settings, and security controls.",
			Users:       5,
			CreatedOn:   "2023-01-15",
			Permissions: []string{"User Management", "System Settings", "Security", "Reports", "Billing"},
		},
		{
			ID:          2,
			Name:        "Manager",
			Description: "Supervisory role with team management capabilities and access to departmental resources and reporting tools.",
			Users:       12,
			CreatedOn:   "2023-02-20",
			Permissions: []string{"Team Management", "Reports", "Project Access", "Resource Management"},
		},
		{
			ID:          3,
			Name:        "Employee",
			Description: "Standard user role with basic access to company resources, personal dashboard, and collaboration tools.",
			Users:       45,
			CreatedOn:   "2023-01-10",
			Permissions: []string{"Dashboard", "Profile", "Basic Reports", "Collaboration Tools"},
		},
	}
}
