package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter *PaymentFilter) ([]Payment, int, error)
	Delete(ctx context.Context, id string) error
}
