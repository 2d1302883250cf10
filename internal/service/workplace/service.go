package workplace

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/workplace"
)

type WorkplaceServiceImpl struct {
	workplace.WorkplaceRepository
}

func NewWorkplaceService(workplaceRepo workplace.WorkplaceRepository) workplace.WorkplaceService {
	return &WorkplaceServiceImpl{WorkplaceRepository: workplaceRepo}
}

// GetMyWorkplace implements workplace.WorkplaceService.
func (s *WorkplaceServiceImpl) GetMyWorkplace(ctx context.Context) (workplace.WorkplaceResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return workplace.WorkplaceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return workplace.WorkplaceResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	site, err := s.WorkplaceRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return workplace.WorkplaceResponse{}, err
	}
	if site == nil {
		return workplace.WorkplaceResponse{}, workplace.ErrWorkplaceNotFound
	}

	return site.ToResponse(), nil
}
