package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/narekn7/yerevan-pricing/internal/models"
)

// CategoryRepository lists the static category reference data.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
}

// PostgresCategoryRepository implements CategoryRepository on dim_category.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// List returns all categories ordered by id.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT category_id, category_name FROM dim_category ORDER BY category_id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var rec models.Category
		if err := rows.Scan(&rec.CategoryID, &rec.CategoryName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, rec)
	}
	return categories, rows.Err()
}
