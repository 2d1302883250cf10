package attendance

import "errors"

// Guard errors returned by the state engine. All are caller-recoverable: the
// caller shows a message and takes no further local action.
var (
	ErrOutOfRange          = errors.New("you are outside the workplace radius")
	ErrScheduleUnavailable = errors.New("no work schedule loaded for today")
	ErrAlreadyClockedIn    = errors.New("you have already clocked in today")
	ErrNotYetClockedIn     = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut   = errors.New("you have already clocked out today")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
