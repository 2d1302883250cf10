package employee

import "time"

// Employee is the person signing in from the mobile app.
type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	Name         string
	Nickname     *string
	Position     *string
	HireDate     *time.Time
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
