package attendance

import (
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
)

// The attendance state engine. Everything in this file is a pure function
// over explicit snapshots: it never touches storage, never mutates its inputs
// and is idempotent for identical inputs. Persisted attendance remains the
// single source of truth; the engine only decides whether a transition is
// permitted right now and what the submission must look like.

// Eligibility is the momentary, recomputed determination of whether an
// attendance action is currently permitted. It is derived on every location
// update and record fetch and never persisted.
type Eligibility struct {
	IsWithinRadius bool
	HasStarted     bool
	HasEnded       bool
}

// ClockInSubmission is the payload a permitted clock-in must persist. It
// carries a copy of the schedule clocks in force at clock-in for audit.
type ClockInSubmission struct {
	StartDate  string
	StartTime  string
	StartState StartState

	ScheduleStartTime     string
	ScheduleEndTime       string
	ScheduleRestStartTime string
	ScheduleRestEndTime   string
}

// ClockOutSubmission is the payload a permitted clock-out must persist.
type ClockOutSubmission struct {
	AttendanceID string
	EndDate      string
	EndTime      string
	EndState     EndState
}

// StateOn returns the record's lifecycle state for the given evaluation date.
// A nil record, or a record whose StartDate does not match the evaluation
// date, is NOT_STARTED: attendance resets implicitly when the day rolls over.
func StateOn(rec *Record, date string) State {
	if rec == nil || rec.StartDate != date {
		return StateNotStarted
	}
	if !rec.HasStarted() {
		return StateNotStarted
	}
	if rec.HasEnded() {
		return StateEnded
	}
	return StateStarted
}

// EvaluateEligibility derives the eligibility snapshot for the given date.
func EvaluateEligibility(rec *Record, withinRadius bool, date string) Eligibility {
	state := StateOn(rec, date)
	return Eligibility{
		IsWithinRadius: withinRadius,
		HasStarted:     state != StateNotStarted,
		HasEnded:       state == StateEnded,
	}
}

// TryClockIn evaluates the NOT_STARTED -> STARTED transition. Guards run in a
// fixed order: radius, schedule, then the state precondition. Only when all
// pass does it construct the submission; nothing is mutated on failure, so a
// rejected or failed submission is retryable with the same inputs.
func TryClockIn(rec *Record, sched *schedule.DailySchedule, withinRadius bool, now time.Time) (ClockInSubmission, error) {
	if !withinRadius {
		return ClockInSubmission{}, ErrOutOfRange
	}
	if sched == nil {
		return ClockInSubmission{}, ErrScheduleUnavailable
	}

	today := now.Format(DateLayout)
	if StateOn(rec, today) != StateNotStarted {
		return ClockInSubmission{}, ErrAlreadyClockedIn
	}

	clock := now.Format(ClockLayout)
	startState := StartStateOnTime
	if sched.StartTime < clock {
		startState = StartStateLate
	}

	return ClockInSubmission{
		StartDate:             today,
		StartTime:             clock,
		StartState:            startState,
		ScheduleStartTime:     sched.StartTime,
		ScheduleEndTime:       sched.EndTime,
		ScheduleRestStartTime: sched.RestStartTime,
		ScheduleRestEndTime:   sched.RestEndTime,
	}, nil
}

// TryClockOut evaluates the STARTED -> ENDED transition. ENDED is terminal
// for the day; leaving is always recorded as LEFT regardless of punctuality.
func TryClockOut(rec *Record, sched *schedule.DailySchedule, withinRadius bool, now time.Time) (ClockOutSubmission, error) {
	if !withinRadius {
		return ClockOutSubmission{}, ErrOutOfRange
	}
	if sched == nil {
		return ClockOutSubmission{}, ErrScheduleUnavailable
	}

	today := now.Format(DateLayout)
	switch StateOn(rec, today) {
	case StateNotStarted:
		return ClockOutSubmission{}, ErrNotYetClockedIn
	case StateEnded:
		return ClockOutSubmission{}, ErrAlreadyClockedOut
	}

	return ClockOutSubmission{
		AttendanceID: rec.AttendanceID,
		EndDate:      today,
		EndTime:      now.Format(ClockLayout),
		EndState:     EndStateLeft,
	}, nil
}

// ApplyServerRecord adopts the persisted record as the new local truth. Local
// state is only ever updated from an acknowledged server record, never
// optimistically ahead of it.
func ApplyServerRecord(server Record) Record {
	return server
}
