package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/workplace"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/geo"
)

// AttendanceServiceImpl is the "surrounding app" of the state engine: it
// collects fresh snapshots of the workplace, schedule and today's record,
// lets the pure engine decide, and persists only what the engine permitted.
// The stored row is the single source of truth; responses always reflect it.
type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	schedule.ScheduleRepository
	workplace.WorkplaceRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	workplaceRepo workplace.WorkplaceRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
		WorkplaceRepository:  workplaceRepo,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// snapshot gathers the engine inputs for one evaluation. The workplace and
// schedule are passed along as nil when unconfigured so the engine can fail
// closed on its own terms.
func (a *AttendanceServiceImpl) snapshot(ctx context.Context, employeeID, companyID string, user geo.Point, now time.Time) (*attendance.Record, *schedule.DailySchedule, bool, error) {
	wp, err := a.WorkplaceRepository.GetByCompanyID(ctx, companyID)
	if err != nil && !errors.Is(err, workplace.ErrWorkplaceNotFound) {
		return nil, nil, false, fmt.Errorf("failed to get workplace: %w", err)
	}
	withinRadius := workplace.WithinRadius(wp, user)

	sched, err := a.ScheduleRepository.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil && !errors.Is(err, schedule.ErrScheduleNotFound) {
		return nil, nil, false, fmt.Errorf("failed to get schedule: %w", err)
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, now.Format(attendance.DateLayout), companyID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	return rec, sched, withinRadius, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, query attendance.TodayQuery) (attendance.TodayResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.TodayResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := time.Now()
	today := now.Format(attendance.DateLayout)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	// No device location means the radius check fails closed.
	withinRadius := false
	if query.Latitude != nil && query.Longitude != nil {
		wp, err := a.WorkplaceRepository.GetByCompanyID(ctx, companyID)
		if err != nil && !errors.Is(err, workplace.ErrWorkplaceNotFound) {
			return attendance.TodayResponse{}, fmt.Errorf("failed to get workplace: %w", err)
		}
		withinRadius = workplace.WithinRadius(wp, geo.Point{Latitude: *query.Latitude, Longitude: *query.Longitude})
	}

	resp := attendance.TodayResponse{
		Eligibility: attendance.EligibilityResponse(attendance.EvaluateEligibility(rec, withinRadius, today)),
	}
	if attendance.StateOn(rec, today) != attendance.StateNotStarted {
		r := rec.ToResponse()
		resp.Attendance = &r
	}

	return resp, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	user := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}

	rec, sched, withinRadius, err := a.snapshot(ctx, employeeID, companyID, user, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	sub, err := attendance.TryClockIn(rec, sched, withinRadius, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		AttendanceID:          uuid.NewString(),
		EmployeeID:            employeeID,
		CompanyID:             companyID,
		StartDate:             sub.StartDate,
		StartTime:             sub.StartTime,
		StartState:            sub.StartState,
		ScheduleStartTime:     sub.ScheduleStartTime,
		ScheduleEndTime:       sub.ScheduleEndTime,
		ScheduleRestStartTime: sub.ScheduleRestStartTime,
		ScheduleRestEndTime:   sub.ScheduleRestEndTime,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	canonical := attendance.ApplyServerRecord(created)
	return canonical.ToResponse(), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	user := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}

	rec, sched, withinRadius, err := a.snapshot(ctx, employeeID, companyID, user, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	sub, err := attendance.TryClockOut(rec, sched, withinRadius, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.CloseOut(ctx, sub, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	canonical := attendance.ApplyServerRecord(updated)
	return canonical.ToResponse(), nil
}
