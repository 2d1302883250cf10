package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("no work schedule found for this employee")
)
