package workplace

import "errors"

var (
	ErrWorkplaceNotFound = errors.New("no workplace registered for this company")
)
