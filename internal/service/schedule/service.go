package schedule

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{ScheduleRepository: scheduleRepo}
}

// GetMySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetMySchedule(ctx context.Context) (schedule.ScheduleResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return schedule.ScheduleResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return schedule.ScheduleResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	sched, err := s.ScheduleRepository.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return sched.ToResponse(), nil
}
