package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs owns the background maintenance of attendance records.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_attendances", 1*time.Hour, j.CloseStaleAttendances)
}

// CloseStaleAttendances force-closes records from previous days that were
// never clocked out. Attendance resets implicitly at day rollover, so a
// record left open from yesterday can never be closed by its owner again.
func (j *AttendanceJobs) CloseStaleAttendances(ctx context.Context) error {
	// Only run during the first hour after midnight.
	if time.Now().Hour() != 0 {
		return nil
	}

	today := time.Now().Format(attendance.DateLayout)
	closed, err := j.attendanceRepo.CloseStale(ctx, today)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Cron: closed stale attendance records", "count", closed)
	}
	return nil
}
