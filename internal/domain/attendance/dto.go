package attendance

import (
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

// ClockInRequest carries the device location captured at the moment of the
// clock-in attempt.
type ClockInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ClockInRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

// ClockOutRequest carries the device location captured at the moment of the
// clock-out attempt.
type ClockOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ClockOutRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

func validateCoordinates(latitude, longitude float64) error {
	var errs validator.ValidationErrors

	if latitude < -90 || latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if longitude < -180 || longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TodayQuery carries the optional device location for eligibility. Without a
// location the radius check fails closed.
type TodayQuery struct {
	Latitude  *float64
	Longitude *float64
}

func (q *TodayQuery) Validate() error {
	var errs validator.ValidationErrors

	if (q.Latitude == nil) != (q.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if q.Latitude != nil && (*q.Latitude < -90 || *q.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if q.Longitude != nil && (*q.Longitude < -180 || *q.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the canonical persisted record returned to the app.
type AttendanceResponse struct {
	AttendanceID string  `json:"attendance_id"`
	StartDate    string  `json:"start_date"`
	StartTime    string  `json:"start_time"`
	StartState   string  `json:"start_state"`
	EndDate      *string `json:"end_date,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	EndState     *string `json:"end_state,omitempty"`

	ScheduleStartTime     string `json:"schedule_start_time"`
	ScheduleEndTime       string `json:"schedule_end_time"`
	ScheduleRestStartTime string `json:"schedule_rest_start_time"`
	ScheduleRestEndTime   string `json:"schedule_rest_end_time"`
}

// EligibilityResponse mirrors the derived eligibility snapshot.
type EligibilityResponse struct {
	IsWithinRadius bool `json:"is_within_radius"`
	HasStarted     bool `json:"has_started"`
	HasEnded       bool `json:"has_ended"`
}

// TodayResponse is today's record (nil when the day has not started) plus the
// eligibility derived from the submitted device location.
type TodayResponse struct {
	Attendance  *AttendanceResponse `json:"attendance"`
	Eligibility EligibilityResponse `json:"eligibility"`
}

func (r *Record) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID:          r.AttendanceID,
		StartDate:             r.StartDate,
		StartTime:             r.StartTime,
		StartState:            string(r.StartState),
		EndDate:               r.EndDate,
		EndTime:               r.EndTime,
		ScheduleStartTime:     r.ScheduleStartTime,
		ScheduleEndTime:       r.ScheduleEndTime,
		ScheduleRestStartTime: r.ScheduleRestStartTime,
		ScheduleRestEndTime:   r.ScheduleRestEndTime,
	}
	if r.EndState != nil {
		state := string(*r.EndState)
		resp.EndState = &state
	}
	return resp
}
