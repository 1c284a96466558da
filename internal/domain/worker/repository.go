package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w *Worker) error
	GetByID(ctx context.Context, id string) (*Worker, error)
	List(ctx context.Context, req *ListWorkersRequest) ([]Worker, int, error)
	Update(ctx context.Context, w *Worker) error
	Delete(ctx context.Context, id string) error
}
