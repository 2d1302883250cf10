package attendance

import "time"

// Date and clock layouts used across attendance records. Clock values are
// zero-padded "HH:mm", so lexicographic comparison matches chronological order.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// StartState classifies a clock-in against the scheduled start time.
type StartState string

const (
	StartStateOnTime StartState = "ON_TIME"
	StartStateLate   StartState = "LATE"
)

// EndState marks a clock-out. Leaving is always recorded as LEFT; there is no
// early/late-leave variant.
type EndState string

const EndStateLeft EndState = "LEFT"

// State is the per-day lifecycle of an attendance record.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StateStarted    State = "STARTED"
	StateEnded      State = "ENDED"
)

// Record is one employee's attendance for a single calendar day. End fields
// are nil until a clock-out is recorded. The schedule fields are an audit copy
// of the schedule that was in force at clock-in time.
type Record struct {
	AttendanceID string
	EmployeeID   string
	CompanyID    string

	StartDate  string // YYYY-MM-DD
	StartTime  string // HH:mm
	StartState StartState

	EndDate  *string // YYYY-MM-DD
	EndTime  *string // HH:mm
	EndState *EndState

	ScheduleStartTime     string
	ScheduleEndTime       string
	ScheduleRestStartTime string
	ScheduleRestEndTime   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStarted reports whether a clock-in has been recorded.
func (r *Record) HasStarted() bool {
	return r != nil && r.StartTime != ""
}

// HasEnded reports whether a clock-out has been recorded. HasEnded implies
// HasStarted.
func (r *Record) HasEnded() bool {
	return r.HasStarted() && r.EndTime != nil && *r.EndTime != ""
}
