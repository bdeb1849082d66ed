package employee

import (
	"time"
)

// Role is the closed set of staff roles.
type Role string

const (
	RoleManager  Role = "manager"
	RoleCashier  Role = "cashier"
	RoleBaker    Role = "baker"
	RolePrepCook Role = "prep_cook"
)

// ValidRole reports whether r is a recognized role.
func ValidRole(r Role) bool {
	switch r {
	case RoleManager, RoleCashier, RoleBaker, RolePrepCook:
		return true
	}
	return false
}

// DefaultHourlyWage applies when a create request omits the wage.
const DefaultHourlyWage = 15.0

// Employee is a member of staff. Employees can only be created and listed;
// no update or delete operation exists.
type Employee struct {
	ID         string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Role       Role      `bson:"role" json:"role"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	HourlyWage float64   `bson:"hourly_wage" json:"hourly_wage"`
	HireDate   time.Time `bson:"hire_date" json:"hire_date"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
}

// CreateEmployeeRequest is the payload for hiring an employee.
type CreateEmployeeRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	HourlyWage *float64 `json:"hourly_wage,omitempty"`
}
