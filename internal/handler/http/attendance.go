package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetToday(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetToday implements AttendanceHandler. The device location comes in as
// query parameters; both are optional but must come together.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	var query attendance.TodayQuery

	if raw := r.URL.Query().Get("latitude"); raw != "" {
		latitude, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "latitude must be a number", nil)
			return
		}
		query.Latitude = &latitude
	}
	if raw := r.URL.Query().Get("longitude"); raw != "" {
		longitude, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "longitude must be a number", nil)
			return
		}
		query.Longitude = &longitude
	}

	// Validate DTO
	if err := query.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	todayResponse, err := h.attendanceService.GetToday(r.Context(), query)
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, todayResponse)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	attendanceResponse, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked in", "attendance_id", attendanceResponse.AttendanceID)
	response.Created(w, "Clocked in successfully", attendanceResponse)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	attendanceResponse, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked out", "attendance_id", attendanceResponse.AttendanceID)
	response.SuccessWithMessage(w, "Clocked out successfully", attendanceResponse)
}
