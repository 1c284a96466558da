package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records one worker's day with full validation
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// BulkMark records a whole crew for one date atomically
	BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance fixes a recorded day; worker and date never change
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes an attendance record
	DeleteAttendance(ctx context.Context, id string) error
}
