package vacation

import "errors"

var (
	ErrVacationNotFound  = errors.New("vacation request not found")
	ErrOverlappingPeriod = errors.New("an existing vacation overlaps this period")
)
