package response

import (
	"errors"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/employee"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/schedule"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/vacation"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/workplace"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token not provided")

	// Attendance guard errors. Conflicts mean the stored record already
	// moved past the requested transition.
	case errors.Is(err, attendance.ErrOutOfRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrScheduleUnavailable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotYetClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Lookup errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, workplace.ErrWorkplaceNotFound):
		NotFound(w, "No workplace registered for this company")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No work schedule found")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrOverlappingPeriod):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
