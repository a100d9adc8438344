package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/narekn7/yerevan-pricing/internal/models"
)

// CustomerRepository defines read-only access to the customer dimension.
type CustomerRepository interface {
	List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
	GetByID(ctx context.Context, id int) (*models.Customer, error)
}

const customerColumns = "customer_id, gender, age_group, avg_spending, visit_frequency"

// PostgresCustomerRepository implements CustomerRepository on dim_customer.
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

// List returns customers matching every supplied filter, ordered by id.
func (r *PostgresCustomerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	query := "SELECT " + customerColumns + " FROM dim_customer"

	var conds []string
	var args []any

	if filter.AgeGroup != "" {
		args = append(args, filter.AgeGroup)
		conds = append(conds, fmt.Sprintf("age_group = $%d", len(args)))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		conds = append(conds, fmt.Sprintf("LOWER(gender) = LOWER($%d)", len(args)))
	}
	if filter.MinSpending != nil {
		args = append(args, *filter.MinSpending)
		conds = append(conds, fmt.Sprintf("avg_spending >= $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY customer_id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var rec models.Customer
		if err := rows.Scan(&rec.CustomerID, &rec.Gender, &rec.AgeGroup, &rec.AvgSpending, &rec.VisitFrequency); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, rec)
	}
	return customers, rows.Err()
}

// GetByID returns a single customer or ErrCustomerNotFound.
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM dim_customer WHERE customer_id = $1", id)

	var rec models.Customer
	err := row.Scan(&rec.CustomerID, &rec.Gender, &rec.AgeGroup, &rec.AvgSpending, &rec.VisitFrequency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &rec, nil
}
