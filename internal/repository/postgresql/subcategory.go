package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type subcategoryRepositoryImpl struct {
	db *database.DB
}

func NewSubcategoryRepository(db *database.DB) subcategory.SubcategoryRepository {
	return &subcategoryRepositoryImpl{db: db}
}

// Create implements subcategory.SubcategoryRepository.
func (r *subcategoryRepositoryImpl) Create(ctx context.Context, s subcategory.Subcategory) (subcategory.Subcategory, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO subcategories (id, category_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, category_id, name, created_at, updated_at
	`

	var result subcategory.Subcategory
	err := q.QueryRow(ctx, query, s.ID, s.CategoryID, s.Name).Scan(
		&result.ID,
		&result.CategoryID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return subcategory.Subcategory{}, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return result, nil
}

// GetByID implements subcategory.SubcategoryRepository.
func (r *subcategoryRepositoryImpl) GetByID(ctx context.Context, id string) (subcategory.Subcategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.category_id, c.name, s.name, s.created_at, s.updated_at
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
		WHERE s.id = $1
	`

	var result subcategory.Subcategory
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.CategoryID,
		&result.CategoryName,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return subcategory.Subcategory{}, subcategory.ErrSubcategoryNotFound
		}
		return subcategory.Subcategory{}, fmt.Errorf("failed to get subcategory: %w", err)
	}

	return result, nil
}

// List implements subcategory.SubcategoryRepository.
func (r *subcategoryRepositoryImpl) List(ctx context.Context, categoryID *string) ([]subcategory.Subcategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.category_id, c.name, s.name, s.created_at, s.updated_at
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
	`
	args := []interface{}{}

	if categoryID != nil && *categoryID != "" {
		query += ` WHERE s.category_id = $1`
		args = append(args, *categoryID)
	}

	query += ` ORDER BY c.name ASC, s.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []subcategory.Subcategory
	for rows.Next() {
		var s subcategory.Subcategory
		err := rows.Scan(
			&s.ID,
			&s.CategoryID,
			&s.CategoryName,
			&s.Name,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return subcategories, nil
}

// Update implements subcategory.SubcategoryRepository.
func (r *subcategoryRepositoryImpl) Update(ctx context.Context, req subcategory.UpdateSubcategoryRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE subcategories SET name = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return subcategory.ErrSubcategoryNotFound
	}

	return nil
}

// Delete implements subcategory.SubcategoryRepository.
func (r *subcategoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM subcategories WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return subcategory.ErrSubcategoryNotFound
	}

	return nil
}
