package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmployeeCode retrieves an employee by their sign-in code.
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
}
