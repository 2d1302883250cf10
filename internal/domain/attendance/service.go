package attendance

import "context"

// AttendanceService drives the state engine with fresh snapshots of the
// workplace, schedule and today's record, and persists permitted transitions.
type AttendanceService interface {
	// GetToday returns today's record and the eligibility derived from the
	// submitted device location.
	GetToday(ctx context.Context, query TodayQuery) (TodayResponse, error)

	// ClockIn evaluates and persists the NOT_STARTED -> STARTED transition.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut evaluates and persists the STARTED -> ENDED transition.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
}
