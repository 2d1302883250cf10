package http

import (
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMySchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetMySchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	scheduleResponse, err := h.scheduleService.GetMySchedule(r.Context())
	if err != nil {
		slog.Error("GetMySchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, scheduleResponse)
}
