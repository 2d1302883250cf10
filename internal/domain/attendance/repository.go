package attendance

import "context"

// AttendanceRepository defines data access for daily attendance records.
// All lookups carry companyID to prevent cross-company data access.
type AttendanceRepository interface {
	// Create persists a new clock-in record. The backend enforces one record
	// per employee per calendar day.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a calendar
	// day ("YYYY-MM-DD"). Returns nil when the day has not started.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string, companyID string) (*Record, error)

	// CloseOut applies an acknowledged clock-out submission and returns the
	// updated record.
	CloseOut(ctx context.Context, sub ClockOutSubmission, companyID string) (Record, error)

	// CloseStale force-closes records from days before the given date that
	// were never clocked out, stamping their scheduled end time as the end.
	CloseStale(ctx context.Context, before string) (int64, error)
}
