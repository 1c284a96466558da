package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrPhoneExists    = errors.New("worker with this phone number already exists")
)
