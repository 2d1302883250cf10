package schedule

import "context"

// ScheduleService exposes the daily schedule to the authenticated employee.
type ScheduleService interface {
	// GetMySchedule returns the caller's configured work hours for the day.
	GetMySchedule(ctx context.Context) (ScheduleResponse, error)
}
