package user

// Role is the access level of a portal user.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
	RoleClient   Role = "Client"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleManager, RoleEmployee, RoleClient}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// User is a portal account.
type User struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       Role   `json:"role" validate:"enum"`
	IsActive   bool   `json:"isActive"`
	IsArchived bool   `json:"isArchived"`
	Department string `json:"department,omitempty"`
	LastLogin  string `json:"lastLogin"`
	CreatedAt  string `json:"createdAt" validate:"datetime=2006-01-02"`
}

// ID returns the identifier of u.
func ID(u User) string { return u.ID }

// Status renders the active flag for display.
func (u User) Status() string {
	if u.IsActive {
		return "Active"
	}
	return "Inactive"
}

// Stats summarizes the user collection.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Employees int `json:"employees"`
	Admins    int `json:"admins"`
}
