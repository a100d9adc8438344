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

// RestaurantRepository defines the interface for restaurant data access.
type RestaurantRepository interface {
	List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id int) (*models.Restaurant, error)
	Create(ctx context.Context, payload models.RestaurantPayload) (*models.Restaurant, error)
	Update(ctx context.Context, id int, payload models.RestaurantPayload) (*models.Restaurant, error)
	Delete(ctx context.Context, id int) error
}

const restaurantColumns = "restaurant_id, name, location, type, avg_customer_count, rating, owner_contact"

// PostgresRestaurantRepository implements RestaurantRepository on the
// dim_restaurant dimension table.
type PostgresRestaurantRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRestaurantRepository creates a restaurant repository backed by
// the given pool.
func NewPostgresRestaurantRepository(pool *pgxpool.Pool) *PostgresRestaurantRepository {
	return &PostgresRestaurantRepository{pool: pool}
}

// List returns restaurants matching every supplied filter, ordered by id.
func (r *PostgresRestaurantRepository) List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM dim_restaurant"

	var conds []string
	var args []any

	if filter.Location != "" {
		args = append(args, filter.Location)
		conds = append(conds, fmt.Sprintf("LOWER(location) = LOWER($%d)", len(args)))
	}
	if filter.VenueType != "" {
		args = append(args, filter.VenueType)
		conds = append(conds, fmt.Sprintf("LOWER(type) = LOWER($%d)", len(args)))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf("rating >= $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY restaurant_id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		var rec models.Restaurant
		if err := scanRestaurant(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rec)
	}
	return restaurants, rows.Err()
}

// GetByID returns a single restaurant or ErrRestaurantNotFound.
func (r *PostgresRestaurantRepository) GetByID(ctx context.Context, id int) (*models.Restaurant, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+restaurantColumns+" FROM dim_restaurant WHERE restaurant_id = $1", id)

	var rec models.Restaurant
	if err := scanRestaurant(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return &rec, nil
}

// Create inserts a new restaurant and returns it with the assigned id.
func (r *PostgresRestaurantRepository) Create(ctx context.Context, payload models.RestaurantPayload) (*models.Restaurant, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO dim_restaurant (name, location, type, avg_customer_count, rating, owner_contact)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+restaurantColumns,
		payload.Name, payload.Location, payload.VenueType,
		payload.AvgCustomerCount, payload.Rating, payload.OwnerContact)

	var rec models.Restaurant
	if err := scanRestaurant(row, &rec); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", mapConstraintError(err))
	}
	return &rec, nil
}

// Update fully replaces a restaurant row; ErrRestaurantNotFound when the id
// is absent.
func (r *PostgresRestaurantRepository) Update(ctx context.Context, id int, payload models.RestaurantPayload) (*models.Restaurant, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE dim_restaurant
		SET name = $1, location = $2, type = $3, avg_customer_count = $4, rating = $5, owner_contact = $6
		WHERE restaurant_id = $7
		RETURNING `+restaurantColumns,
		payload.Name, payload.Location, payload.VenueType,
		payload.AvgCustomerCount, payload.Rating, payload.OwnerContact, id)

	var rec models.Restaurant
	if err := scanRestaurant(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("update restaurant %d: %w", id, mapConstraintError(err))
	}
	return &rec, nil
}

// Delete removes a restaurant row; ErrRestaurantNotFound when the id is
// absent, including on a repeated delete.
func (r *PostgresRestaurantRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM dim_restaurant WHERE restaurant_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete restaurant %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func scanRestaurant(row pgx.Row, rec *models.Restaurant) error {
	return row.Scan(
		&rec.RestaurantID, &rec.Name, &rec.Location, &rec.VenueType,
		&rec.AvgCustomerCount, &rec.Rating, &rec.OwnerContact,
	)
}
