package http

import (
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/workplace"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type WorkplaceHandler interface {
	GetMyWorkplace(w http.ResponseWriter, r *http.Request)
}

type workplaceHandlerImpl struct {
	workplaceService workplace.WorkplaceService
}

func NewWorkplaceHandler(workplaceService workplace.WorkplaceService) WorkplaceHandler {
	return &workplaceHandlerImpl{
		workplaceService: workplaceService,
	}
}

// GetMyWorkplace implements WorkplaceHandler.
func (h *workplaceHandlerImpl) GetMyWorkplace(w http.ResponseWriter, r *http.Request) {
	workplaceResponse, err := h.workplaceService.GetMyWorkplace(r.Context())
	if err != nil {
		slog.Error("GetMyWorkplace service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workplaceResponse)
}
