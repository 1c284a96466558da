package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDay       = errors.New("attendance already marked for this worker on this date")
	ErrAbsentWithAmount   = errors.New("absent days cannot carry a wage amount")
)
