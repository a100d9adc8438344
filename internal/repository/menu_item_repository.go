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

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int) (*models.MenuItem, error)
	// GetByName returns the first menu item whose name matches
	// case-insensitively; used for prediction feature lookup.
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	Create(ctx context.Context, payload models.MenuItemPayload) (*models.MenuItem, error)
	Update(ctx context.Context, id int, payload models.MenuItemPayload) (*models.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

const menuItemColumns = "product_id, restaurant_id, product_name, category_id, base_price, cost, portion_size, available"

// PostgresMenuItemRepository implements MenuItemRepository on the
// dim_menu_item dimension table.
type PostgresMenuItemRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMenuItemRepository creates a menu item repository backed by the
// given pool.
func NewPostgresMenuItemRepository(pool *pgxpool.Pool) *PostgresMenuItemRepository {
	return &PostgresMenuItemRepository{pool: pool}
}

// List returns menu items matching every supplied filter, ordered by id.
func (r *PostgresMenuItemRepository) List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	query := "SELECT " + menuItemColumns + " FROM dim_menu_item"

	var conds []string
	var args []any

	if filter.RestaurantID != nil {
		args = append(args, *filter.RestaurantID)
		conds = append(conds, fmt.Sprintf("restaurant_id = $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		conds = append(conds, fmt.Sprintf("available = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("base_price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("base_price <= $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY product_id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var rec models.MenuItem
		if err := scanMenuItem(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// GetByID returns a single menu item or ErrMenuItemNotFound.
func (r *PostgresMenuItemRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+menuItemColumns+" FROM dim_menu_item WHERE product_id = $1", id)

	var rec models.MenuItem
	if err := scanMenuItem(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("get menu item %d: %w", id, err)
	}
	return &rec, nil
}

// GetByName returns the lowest-id menu item with the given name.
func (r *PostgresMenuItemRepository) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+menuItemColumns+` FROM dim_menu_item
		 WHERE LOWER(product_name) = LOWER($1)
		 ORDER BY product_id LIMIT 1`, name)

	var rec models.MenuItem
	if err := scanMenuItem(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("get menu item %q: %w", name, err)
	}
	return &rec, nil
}

// Create inserts a new menu item and returns it with the assigned id.
// ErrInvalidReference when restaurant_id or category_id points nowhere.
func (r *PostgresMenuItemRepository) Create(ctx context.Context, payload models.MenuItemPayload) (*models.MenuItem, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO dim_menu_item (restaurant_id, product_name, category_id, base_price, cost, portion_size, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+menuItemColumns,
		payload.RestaurantID, payload.ProductName, payload.CategoryID,
		payload.BasePrice, payload.Cost, payload.PortionSize, payload.IsAvailable())

	var rec models.MenuItem
	if err := scanMenuItem(row, &rec); err != nil {
		return nil, fmt.Errorf("create menu item: %w", mapConstraintError(err))
	}
	return &rec, nil
}

// Update fully replaces a menu item row.
func (r *PostgresMenuItemRepository) Update(ctx context.Context, id int, payload models.MenuItemPayload) (*models.MenuItem, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE dim_menu_item
		SET restaurant_id = $1, product_name = $2, category_id = $3,
		    base_price = $4, cost = $5, portion_size = $6, available = $7
		WHERE product_id = $8
		RETURNING `+menuItemColumns,
		payload.RestaurantID, payload.ProductName, payload.CategoryID,
		payload.BasePrice, payload.Cost, payload.PortionSize, payload.IsAvailable(), id)

	var rec models.MenuItem
	if err := scanMenuItem(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("update menu item %d: %w", id, mapConstraintError(err))
	}
	return &rec, nil
}

// Delete removes a menu item row or returns ErrMenuItemNotFound.
func (r *PostgresMenuItemRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM dim_menu_item WHERE product_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func scanMenuItem(row pgx.Row, rec *models.MenuItem) error {
	return row.Scan(
		&rec.ProductID, &rec.RestaurantID, &rec.ProductName, &rec.CategoryID,
		&rec.BasePrice, &rec.Cost, &rec.PortionSize, &rec.Available,
	)
}
