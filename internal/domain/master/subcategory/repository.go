package subcategory

import "context"

type SubcategoryRepository interface {
	Create(ctx context.Context, s Subcategory) (Subcategory, error)
	GetByID(ctx context.Context, id string) (Subcategory, error)
	List(ctx context.Context, categoryID *string) ([]Subcategory, error)
	Update(ctx context.Context, req UpdateSubcategoryRequest) error
	Delete(ctx context.Context, id string) error
}
