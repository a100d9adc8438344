package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceStats aggregates base prices of the menu items sharing a name.
// Count is zero when the name matches nothing.
type PriceStats struct {
	Avg   float64
	Min   float64
	Max   float64
	Count int
}

// AnalyticsRepository serves the read-only aggregate and reference queries.
type AnalyticsRepository interface {
	PriceStats(ctx context.Context, productName string) (*PriceStats, error)
	// UnitsSold sums sales of every menu item with the given name.
	UnitsSold(ctx context.Context, productName string) (int, error)
	// LatestSeason returns the season of the most recent sale of the item,
	// empty string when there is no sales history.
	LatestSeason(ctx context.Context, productName string) (string, error)
	VenueTypes(ctx context.Context) ([]string, error)
	MenuItemNames(ctx context.Context) ([]string, error)
}

// PostgresAnalyticsRepository implements AnalyticsRepository over the star
// schema.
type PostgresAnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAnalyticsRepository(pool *pgxpool.Pool) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{pool: pool}
}

// PriceStats returns avg/min/max base price across menu items with the name.
func (r *PostgresAnalyticsRepository) PriceStats(ctx context.Context, productName string) (*PriceStats, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(base_price), 0),
		       COALESCE(MIN(base_price), 0),
		       COALESCE(MAX(base_price), 0),
		       COUNT(*)
		FROM dim_menu_item
		WHERE LOWER(product_name) = LOWER($1)`, productName)

	var stats PriceStats
	if err := row.Scan(&stats.Avg, &stats.Min, &stats.Max, &stats.Count); err != nil {
		return nil, fmt.Errorf("price stats for %q: %w", productName, err)
	}
	return &stats, nil
}

// UnitsSold sums units_sold from the sales fact table for the named item.
func (r *PostgresAnalyticsRepository) UnitsSold(ctx context.Context, productName string) (int, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(s.units_sold), 0)
		FROM fact_sales s
		JOIN dim_menu_item m ON m.product_id = s.product_id
		WHERE LOWER(m.product_name) = LOWER($1)`, productName)

	var units int
	if err := row.Scan(&units); err != nil {
		return 0, fmt.Errorf("units sold for %q: %w", productName, err)
	}
	return units, nil
}

// LatestSeason resolves the season dimension of the most recent sale.
func (r *PostgresAnalyticsRepository) LatestSeason(ctx context.Context, productName string) (string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.season
		FROM fact_sales s
		JOIN dim_menu_item m ON m.product_id = s.product_id
		JOIN dim_time t ON t.date = s.date
		WHERE LOWER(m.product_name) = LOWER($1)
		ORDER BY s.date DESC
		LIMIT 1`, productName)
	if err != nil {
		return "", fmt.Errorf("latest season for %q: %w", productName, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", rows.Err()
	}
	var season string
	if err := rows.Scan(&season); err != nil {
		return "", fmt.Errorf("scan season: %w", err)
	}
	return season, nil
}

// VenueTypes returns the distinct venue types present in the restaurant
// dimension.
func (r *PostgresAnalyticsRepository) VenueTypes(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx,
		"SELECT DISTINCT type FROM dim_restaurant ORDER BY type")
}

// MenuItemNames returns every distinct product name, sorted.
func (r *PostgresAnalyticsRepository) MenuItemNames(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx,
		"SELECT DISTINCT product_name FROM dim_menu_item ORDER BY product_name")
}

func (r *PostgresAnalyticsRepository) distinctStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reference query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan reference value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
