package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Create(ctx context.Context, c category.Category) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	var result category.Category
	err := q.QueryRow(ctx, query, c.ID, c.Name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return category.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return result, nil
}

// GetByID implements category.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var result category.Category
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	return result, nil
}

// List implements category.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

// Count implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return total, nil
}

// Update implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM categories WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
