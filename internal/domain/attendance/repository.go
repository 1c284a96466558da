package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, rec *Record) (*Record, error)
	CreateBatch(ctx context.Context, recs []Record) ([]Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, filter *AttendanceFilter) ([]Record, int, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
}
