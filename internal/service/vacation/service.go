package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/vacation"
)

type VacationServiceImpl struct {
	vacation.VacationRepository
}

func NewVacationService(vacationRepo vacation.VacationRepository) vacation.VacationService {
	return &VacationServiceImpl{VacationRepository: vacationRepo}
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

// Register implements vacation.VacationService.
func (s *VacationServiceImpl) Register(ctx context.Context, req vacation.RegisterVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	overlaps, err := s.VacationRepository.HasOverlap(ctx, employeeID, startDate, endDate)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if overlaps {
		return vacation.VacationResponse{}, vacation.ErrOverlappingPeriod
	}

	created, err := s.VacationRepository.Create(ctx, vacation.Vacation{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		State:      vacation.VacationStatePending,
	})
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	return created.ToResponse(), nil
}

// ListMine implements vacation.VacationService.
func (s *VacationServiceImpl) ListMine(ctx context.Context) (vacation.ListVacationResponse, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return vacation.ListVacationResponse{}, err
	}

	vacations, err := s.VacationRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return vacation.ListVacationResponse{}, err
	}

	resp := vacation.ListVacationResponse{
		Vacations: make([]vacation.VacationResponse, 0, len(vacations)),
	}
	for i := range vacations {
		resp.Vacations = append(resp.Vacations, vacations[i].ToResponse())
	}

	return resp, nil
}
