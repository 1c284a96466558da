package master

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
	"github.com/wagebook/wagebook-backend-go/internal/fixtures"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type MasterService interface {
	// Category operations
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (category.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]category.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string) error

	// Subcategory operations
	CreateSubcategory(ctx context.Context, req subcategory.CreateSubcategoryRequest) (subcategory.SubcategoryResponse, error)
	GetSubcategory(ctx context.Context, id string) (subcategory.SubcategoryResponse, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]subcategory.SubcategoryResponse, error)
	UpdateSubcategory(ctx context.Context, req subcategory.UpdateSubcategoryRequest) error
	DeleteSubcategory(ctx context.Context, id string) error

	// SeedDefaults populates the standard work categories into an empty
	// database. A database with any category at all is left untouched.
	SeedDefaults(ctx context.Context) error
}

type masterServiceImpl struct {
	categoryRepo    category.CategoryRepository
	subcategoryRepo subcategory.SubcategoryRepository
}

func NewMasterService(
	categoryRepo category.CategoryRepository,
	subcategoryRepo subcategory.SubcategoryRepository,
) MasterService {
	return &masterServiceImpl{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// ==================== CATEGORY OPERATIONS ====================

func (s *masterServiceImpl) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}

	// Save to database
	created, err := s.categoryRepo.Create(ctx, category.Category{Name: req.Name})
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return category.CategoryResponse{}, category.ErrCategoryNameExists
			}
		}
		return category.CategoryResponse{}, fmt.Errorf("failed to create category: %w", err)
	}

	return category.ToCategoryResponse(created), nil
}

func (s *masterServiceImpl) GetCategory(ctx context.Context, id string) (category.CategoryResponse, error) {
	if !validator.IsValidUUID(id) {
		return category.CategoryResponse{}, category.ErrCategoryNotFound
	}

	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return category.CategoryResponse{}, err
	}

	return category.ToCategoryResponse(entity), nil
}

func (s *masterServiceImpl) ListCategories(ctx context.Context) ([]category.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// If no categories found, return empty list instead of error
	if len(categories) == 0 {
		return []category.CategoryResponse{}, nil
	}

	var responses []category.CategoryResponse
	for _, c := range categories {
		responses = append(responses, category.ToCategoryResponse(c))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	// Validate request
	if err := req.Validate(); err != nil {
		return err
	}

	// Update in database
	err := s.categoryRepo.Update(ctx, req)
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return category.ErrCategoryNameExists
			}
		}
		return err
	}

	return nil
}

// DeleteCategory removes the category. Attendance rows that referenced it
// keep their history with the reference set to NULL, and its subcategories
// are deleted with it.
func (s *masterServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return category.ErrCategoryNotFound
	}

	return s.categoryRepo.Delete(ctx, id)
}

// ==================== SUBCATEGORY OPERATIONS ====================

func (s *masterServiceImpl) CreateSubcategory(ctx context.Context, req subcategory.CreateSubcategoryRequest) (subcategory.SubcategoryResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return subcategory.SubcategoryResponse{}, err
	}

	// Parent category must exist
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return subcategory.SubcategoryResponse{}, err
	}

	// Save to database
	created, err := s.subcategoryRepo.Create(ctx, subcategory.Subcategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return subcategory.SubcategoryResponse{}, subcategory.ErrSubcategoryNameExists
			}
		}
		return subcategory.SubcategoryResponse{}, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return subcategory.ToSubcategoryResponse(created), nil
}

func (s *masterServiceImpl) GetSubcategory(ctx context.Context, id string) (subcategory.SubcategoryResponse, error) {
	if !validator.IsValidUUID(id) {
		return subcategory.SubcategoryResponse{}, subcategory.ErrSubcategoryNotFound
	}

	entity, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return subcategory.SubcategoryResponse{}, err
	}

	return subcategory.ToSubcategoryResponse(entity), nil
}

// ListSubcategories returns all subcategories, or only those under the
// given category when categoryID is non-empty.
func (s *masterServiceImpl) ListSubcategories(ctx context.Context, categoryID string) ([]subcategory.SubcategoryResponse, error) {
	var filter *string
	if !validator.IsEmpty(categoryID) {
		if !validator.IsValidUUID(categoryID) {
			return nil, validator.ValidationErrors{
				{Field: "category_id", Message: "category_id must be a valid UUID"},
			}
		}
		filter = &categoryID
	}

	subcategories, err := s.subcategoryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// If no subcategories found, return empty list instead of error
	if len(subcategories) == 0 {
		return []subcategory.SubcategoryResponse{}, nil
	}

	var responses []subcategory.SubcategoryResponse
	for _, sc := range subcategories {
		responses = append(responses, subcategory.ToSubcategoryResponse(sc))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateSubcategory(ctx context.Context, req subcategory.UpdateSubcategoryRequest) error {
	// Validate request
	if err := req.Validate(); err != nil {
		return err
	}

	// Update in database
	err := s.subcategoryRepo.Update(ctx, req)
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return subcategory.ErrSubcategoryNameExists
			}
		}
		return err
	}

	return nil
}

func (s *masterServiceImpl) DeleteSubcategory(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return subcategory.ErrSubcategoryNotFound
	}

	return s.subcategoryRepo.Delete(ctx, id)
}

// ==================== SEEDING ====================

// SeedDefaults implements MasterService.
func (s *masterServiceImpl) SeedDefaults(ctx context.Context) error {
	total, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if total > 0 {
		return nil
	}

	categories := fixtures.GetDefaultCategories()
	for _, c := range categories {
		createdCategory, err := s.categoryRepo.Create(ctx, c)
		if err != nil {
			slog.Warn("Failed to create default category", "category", c.Name, "error", err)
			// Continue with other categories even if one fails (might be duplicate)
			continue
		}

		for _, sc := range fixtures.GetDefaultSubcategories(createdCategory.ID, createdCategory.Name) {
			if _, err := s.subcategoryRepo.Create(ctx, sc); err != nil {
				slog.Warn("Failed to create default subcategory", "subcategory", sc.Name, "error", err)
			}
		}
	}
	slog.Info("Seeded default categories", "count", len(categories))

	return nil
}
