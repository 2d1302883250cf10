package schedule

import "context"

// ScheduleRepository defines data access for employee work schedules.
type ScheduleRepository interface {
	// GetByEmployeeID retrieves the daily schedule assigned to an employee.
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (*DailySchedule, error)
}
