package attendance

import (
	"testing"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
)

var testSchedule = &schedule.DailySchedule{
	ID:            "sched-1",
	EmployeeID:    "emp-1",
	StartTime:     "09:00",
	EndTime:       "18:00",
	RestStartTime: "12:00",
	RestEndTime:   "13:00",
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func startedRecord(date string) *Record {
	return &Record{
		AttendanceID: "att-1",
		EmployeeID:   "emp-1",
		StartDate:    date,
		StartTime:    "09:00",
		StartState:   StartStateOnTime,
	}
}

func endedRecord(date string) *Record {
	rec := startedRecord(date)
	endTime := "18:02"
	endState := EndStateLeft
	rec.EndDate = &date
	rec.EndTime = &endTime
	rec.EndState = &endState
	return rec
}

func TestTryClockInLateClassification(t *testing.T) {
	cases := []struct {
		now  string
		want StartState
	}{
		{"2025-03-10 09:05", StartStateLate},
		{"2025-03-10 08:55", StartStateOnTime},
		{"2025-03-10 09:00", StartStateOnTime}, // exactly on time is not late
	}
	for _, c := range cases {
		sub, err := TryClockIn(nil, testSchedule, true, at(t, c.now))
		if err != nil {
			t.Fatalf("TryClockIn(now=%s) error = %v", c.now, err)
		}
		if sub.StartState != c.want {
			t.Errorf("TryClockIn(now=%s) StartState = %s, want %s", c.now, sub.StartState, c.want)
		}
	}
}

func TestTryClockInPayload(t *testing.T) {
	sub, err := TryClockIn(nil, testSchedule, true, at(t, "2025-03-10 08:47"))
	if err != nil {
		t.Fatalf("TryClockIn error = %v", err)
	}
	if sub.StartDate != "2025-03-10" || sub.StartTime != "08:47" {
		t.Errorf("payload start = %s %s, want 2025-03-10 08:47", sub.StartDate, sub.StartTime)
	}
	if sub.ScheduleStartTime != "09:00" || sub.ScheduleEndTime != "18:00" ||
		sub.ScheduleRestStartTime != "12:00" || sub.ScheduleRestEndTime != "13:00" {
		t.Errorf("payload is missing the audit copy of the schedule: %+v", sub)
	}
}

func TestTryClockInGuards(t *testing.T) {
	now := at(t, "2025-03-10 09:05")

	if _, err := TryClockIn(nil, testSchedule, false, now); err != ErrOutOfRange {
		t.Errorf("out of radius: err = %v, want ErrOutOfRange", err)
	}
	if _, err := TryClockIn(nil, nil, true, now); err != ErrScheduleUnavailable {
		t.Errorf("no schedule: err = %v, want ErrScheduleUnavailable", err)
	}
	if _, err := TryClockIn(startedRecord("2025-03-10"), testSchedule, true, now); err != ErrAlreadyClockedIn {
		t.Errorf("already started: err = %v, want ErrAlreadyClockedIn", err)
	}
	if _, err := TryClockIn(endedRecord("2025-03-10"), testSchedule, true, now); err != ErrAlreadyClockedIn {
		t.Errorf("already ended: err = %v, want ErrAlreadyClockedIn", err)
	}
	// Radius is checked first; out-of-range wins even when other guards would
	// also fail.
	if _, err := TryClockIn(startedRecord("2025-03-10"), testSchedule, false, now); err != ErrOutOfRange {
		t.Errorf("out of radius with started record: err = %v, want ErrOutOfRange", err)
	}
}

func TestTryClockOutGuards(t *testing.T) {
	now := at(t, "2025-03-10 18:02")

	if _, err := TryClockOut(startedRecord("2025-03-10"), testSchedule, false, now); err != ErrOutOfRange {
		t.Errorf("out of radius: err = %v, want ErrOutOfRange", err)
	}
	if _, err := TryClockOut(startedRecord("2025-03-10"), nil, true, now); err != ErrScheduleUnavailable {
		t.Errorf("no schedule: err = %v, want ErrScheduleUnavailable", err)
	}
	if _, err := TryClockOut(nil, testSchedule, true, now); err != ErrNotYetClockedIn {
		t.Errorf("not started: err = %v, want ErrNotYetClockedIn", err)
	}
	if _, err := TryClockOut(endedRecord("2025-03-10"), testSchedule, true, now); err != ErrAlreadyClockedOut {
		t.Errorf("already ended: err = %v, want ErrAlreadyClockedOut", err)
	}
}

func TestTryClockOutPayload(t *testing.T) {
	sub, err := TryClockOut(startedRecord("2025-03-10"), testSchedule, true, at(t, "2025-03-10 18:02"))
	if err != nil {
		t.Fatalf("TryClockOut error = %v", err)
	}
	if sub.AttendanceID != "att-1" {
		t.Errorf("AttendanceID = %s, want att-1", sub.AttendanceID)
	}
	if sub.EndDate != "2025-03-10" || sub.EndTime != "18:02" {
		t.Errorf("payload end = %s %s, want 2025-03-10 18:02", sub.EndDate, sub.EndTime)
	}
	if sub.EndState != EndStateLeft {
		t.Errorf("EndState = %s, want LEFT", sub.EndState)
	}
}

func TestApplyServerRecordRoundTrip(t *testing.T) {
	now := at(t, "2025-03-10 09:05")

	sub, err := TryClockIn(nil, testSchedule, true, now)
	if err != nil {
		t.Fatalf("TryClockIn error = %v", err)
	}

	// The server acknowledges the submission with the persisted record; the
	// adopted record must durably block a second clock-in.
	server := Record{
		AttendanceID: "att-42",
		EmployeeID:   "emp-1",
		StartDate:    sub.StartDate,
		StartTime:    sub.StartTime,
		StartState:   sub.StartState,
	}
	local := ApplyServerRecord(server)

	if _, err := TryClockIn(&local, testSchedule, true, now); err != ErrAlreadyClockedIn {
		t.Errorf("clock-in after adoption: err = %v, want ErrAlreadyClockedIn", err)
	}
	if _, err := TryClockOut(&local, testSchedule, true, at(t, "2025-03-10 18:00")); err != nil {
		t.Errorf("clock-out after adoption: err = %v, want nil", err)
	}
}

func TestDayRollover(t *testing.T) {
	yesterday := endedRecord("2025-03-09")
	now := at(t, "2025-03-10 09:05")

	if got := StateOn(yesterday, "2025-03-10"); got != StateNotStarted {
		t.Errorf("StateOn(yesterday's record, today) = %s, want NOT_STARTED", got)
	}

	// Yesterday's ended record does not block today's clock-in.
	sub, err := TryClockIn(yesterday, testSchedule, true, now)
	if err != nil {
		t.Fatalf("TryClockIn across rollover: err = %v", err)
	}
	if sub.StartDate != "2025-03-10" {
		t.Errorf("StartDate = %s, want 2025-03-10", sub.StartDate)
	}

	// But it also cannot be clocked out again today.
	if _, err := TryClockOut(yesterday, testSchedule, true, now); err != ErrNotYetClockedIn {
		t.Errorf("clock-out on rolled-over record: err = %v, want ErrNotYetClockedIn", err)
	}
}

func TestEvaluateEligibility(t *testing.T) {
	cases := []struct {
		name   string
		rec    *Record
		within bool
		want   Eligibility
	}{
		{"fresh day", nil, true, Eligibility{IsWithinRadius: true}},
		{"started", startedRecord("2025-03-10"), true, Eligibility{IsWithinRadius: true, HasStarted: true}},
		{"ended", endedRecord("2025-03-10"), false, Eligibility{HasStarted: true, HasEnded: true}},
		{"stale record", endedRecord("2025-03-09"), true, Eligibility{IsWithinRadius: true}},
	}
	for _, c := range cases {
		if got := EvaluateEligibility(c.rec, c.within, "2025-03-10"); got != c.want {
			t.Errorf("%s: EvaluateEligibility = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestEngineIsIdempotent(t *testing.T) {
	now := at(t, "2025-03-10 09:05")
	first, err1 := TryClockIn(nil, testSchedule, true, now)
	second, err2 := TryClockIn(nil, testSchedule, true, now)
	if err1 != nil || err2 != nil {
		t.Fatalf("TryClockIn errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("identical inputs produced different payloads: %+v vs %+v", first, second)
	}
}
