package schedule

import "time"

// DailySchedule is the expected work hours configured for an employee.
// All clock fields are zero-padded "HH:mm" strings, which keeps late/early
// comparisons safe as plain lexicographic string compares.
type DailySchedule struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	StartTime     string
	EndTime       string
	RestStartTime string
	RestEndTime   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
