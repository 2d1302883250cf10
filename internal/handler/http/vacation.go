package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/vacation"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// Register implements VacationHandler.
func (h *vacationHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req vacation.RegisterVacationRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	vacationResponse, err := h.vacationService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Vacation request registered", "vacation_id", vacationResponse.ID)
	response.Created(w, "Vacation request registered successfully", vacationResponse)
}

// ListMine implements VacationHandler.
func (h *vacationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	listResponse, err := h.vacationService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}
