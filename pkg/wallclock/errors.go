package wallclock

import "errors"

var (
	ErrInvalidClock = errors.New("invalid HH:MM clock")
	ErrInvalidDate  = errors.New("invalid YYYY-MM-DD date")
)
