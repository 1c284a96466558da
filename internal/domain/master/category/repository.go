package category

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, c Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, req UpdateCategoryRequest) error
	Delete(ctx context.Context, id string) error
}
