// Package etl bulk-loads the star schema from the CSV snapshots. Every
// loader is idempotent: rows are inserted with conflict-skip semantics so
// reseeding a populated database is safe.
package etl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the slice of the pgx pool the loader needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Loader populates the dimension and fact tables from a directory of CSV
// snapshots.
type Loader struct {
	db      Execer
	dataDir string
	logger  *slog.Logger
}

// NewLoader creates a loader reading from dataDir. Every log line of a run
// carries the same run id so reseeds are easy to correlate.
func NewLoader(db Execer, dataDir string, logger *slog.Logger) *Loader {
	return &Loader{
		db:      db,
		dataDir: dataDir,
		logger:  logger.With("run_id", uuid.New().String()),
	}
}

// LoadAll runs every loader in dependency order, then re-syncs the identity
// sequences so API-created rows don't collide with loaded ids.
func (l *Loader) LoadAll(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"dim_category", l.LoadCategories},
		{"dim_season", l.LoadSeasons},
		{"dim_time", l.LoadTimes},
		{"dim_market", l.LoadMarkets},
		{"dim_restaurant", l.LoadRestaurants},
		{"dim_customer", l.LoadCustomers},
		{"dim_menu_item", l.LoadMenuItems},
		{"fact_market_prices", l.LoadMarketPrices},
		{"fact_sales", l.LoadSales},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("load %s: %w", step.name, err)
		}
	}

	return l.SyncSequences(ctx)
}

// LoadCategories loads dim_category from dim_category.csv.
func (l *Loader) LoadCategories(ctx context.Context) error {
	return l.loadFile(ctx, "dim_category.csv", "dim_category", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_category (category_id, category_name)
			VALUES ($1, $2)
			ON CONFLICT (category_id) DO NOTHING`,
			row["category_id"], row["category_name"])
	})
}

// LoadSeasons loads dim_season from dim_season.csv.
func (l *Loader) LoadSeasons(ctx context.Context) error {
	return l.loadFile(ctx, "dim_season.csv", "dim_season", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_season (season, months)
			VALUES ($1, $2)
			ON CONFLICT (season) DO NOTHING`,
			row["season"], row["months"])
	})
}

// LoadTimes loads dim_time from dim_time.csv.
func (l *Loader) LoadTimes(ctx context.Context) error {
	return l.loadFile(ctx, "dim_time.csv", "dim_time", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_time (date, year, month, day, day_of_week, season)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (date) DO NOTHING`,
			row["date"], row["year"], row["month"], row["day"],
			row["day_of_week"], row["season"])
	})
}

// LoadMarkets loads dim_market from dim_market.csv.
func (l *Loader) LoadMarkets(ctx context.Context) error {
	return l.loadFile(ctx, "dim_market.csv", "dim_market", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_market (market_id, admin1, admin2, market_name, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (market_id) DO NOTHING`,
			row["market_id"], row["admin1"], row["admin2"],
			row["market_name"], row["latitude"], row["longitude"])
	})
}

// LoadRestaurants loads dim_restaurant from dim_restaurant.csv.
func (l *Loader) LoadRestaurants(ctx context.Context) error {
	return l.loadFile(ctx, "dim_restaurant.csv", "dim_restaurant", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_restaurant (restaurant_id, name, location, type, avg_customer_count, rating, owner_contact)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (restaurant_id) DO NOTHING`,
			row["restaurant_id"], row["name"], row["location"], row["type"],
			row["avg_customer_count"], row["rating"], row["owner_contact"])
	})
}

// LoadCustomers loads dim_customer from dim_customer.csv.
func (l *Loader) LoadCustomers(ctx context.Context) error {
	return l.loadFile(ctx, "dim_customer.csv", "dim_customer", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_customer (customer_id, gender, age_group, avg_spending, visit_frequency)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (customer_id) DO NOTHING`,
			row["customer_id"], row["gender"], row["age_group"],
			row["avg_spending"], row["visit_frequency"])
	})
}

// LoadMenuItems loads dim_menu_item from dim_menu_item.csv.
func (l *Loader) LoadMenuItems(ctx context.Context) error {
	return l.loadFile(ctx, "dim_menu_item.csv", "dim_menu_item", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO dim_menu_item (product_id, restaurant_id, product_name, category_id, base_price, cost, portion_size, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (product_id) DO NOTHING`,
			row["product_id"], row["restaurant_id"], row["product_name"],
			row["category_id"], row["base_price"], row["cost"],
			row["portion_size"], toBool(row["available"]))
	})
}

// LoadMarketPrices loads fact_market_prices from fact_market_prices.csv.
func (l *Loader) LoadMarketPrices(ctx context.Context) error {
	return l.loadFile(ctx, "fact_market_prices.csv", "fact_market_prices", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO fact_market_prices (price_id, date, market_id, category, commodity, unit, priceflag, pricetype, currency, price, usdprice)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (price_id) DO NOTHING`,
			row["price_id"], row["date"], row["market_id"], row["category"],
			row["commodity"], row["unit"], row["priceflag"], row["pricetype"],
			row["currency"], row["price"], row["usdprice"])
	})
}

// LoadSales loads fact_sales from fact_sales.csv.
func (l *Loader) LoadSales(ctx context.Context) error {
	return l.loadFile(ctx, "fact_sales.csv", "fact_sales", func(ctx context.Context, row record) (pgconn.CommandTag, error) {
		return l.db.Exec(ctx, `
			INSERT INTO fact_sales (sale_id, product_id, restaurant_id, customer_id, date, units_sold, price_sold, revenue)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (sale_id) DO NOTHING`,
			row["sale_id"], row["product_id"], row["restaurant_id"],
			row["customer_id"], row["date"], row["units_sold"],
			row["price_sold"], row["revenue"])
	})
}

// SyncSequences bumps the identity sequences past the loaded ids. Loaded
// rows carry explicit ids, which would otherwise leave the sequences behind
// and make API-side creates collide.
func (l *Loader) SyncSequences(ctx context.Context) error {
	statements := []string{
		`SELECT setval(pg_get_serial_sequence('dim_restaurant', 'restaurant_id'),
			(SELECT COALESCE(MAX(restaurant_id), 1) FROM dim_restaurant))`,
		`SELECT setval(pg_get_serial_sequence('dim_menu_item', 'product_id'),
			(SELECT COALESCE(MAX(product_id), 1) FROM dim_menu_item))`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("sync sequences: %w", err)
		}
	}
	return nil
}

type record map[string]string

type insertFunc func(ctx context.Context, row record) (pgconn.CommandTag, error)

// loadFile streams one CSV file row by row through insert. The first row is
// the header; a failed insert aborts with the file and line number.
func (l *Loader) loadFile(ctx context.Context, filename, table string, insert insertFunc) error {
	path := filepath.Join(l.dataDir, filename)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", filename, err)
	}

	var inserted, skipped int
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("read %s line %d: %w", filename, line, err)
		}

		row := make(record, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}

		tag, err := insert(ctx, row)
		if err != nil {
			return fmt.Errorf("insert into %s from %s line %d: %w", table, filename, line, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	l.logger.Info("table loaded",
		"table", table,
		"inserted", inserted,
		"skipped", skipped,
	)
	return nil
}

// toBool translates CSV truthy strings into booleans.
func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
