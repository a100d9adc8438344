package models

// MenuItem is a row of the menu item dimension.
type MenuItem struct {
	ProductID    int     `json:"product_id"`
	RestaurantID int     `json:"restaurant_id"`
	ProductName  string  `json:"product_name"`
	CategoryID   int     `json:"category_id"`
	BasePrice    float64 `json:"base_price"`
	Cost         float64 `json:"cost"`
	PortionSize  string  `json:"portion_size"`
	Available    bool    `json:"available"`
}

// MenuItemPayload is the request body for creating or replacing a menu item.
type MenuItemPayload struct {
	RestaurantID int     `json:"restaurant_id" validate:"gte=1"`
	ProductName  string  `json:"product_name" validate:"required,min=1,max=255"`
	CategoryID   int     `json:"category_id" validate:"gte=1"`
	BasePrice    float64 `json:"base_price" validate:"gte=0"`
	Cost         float64 `json:"cost" validate:"gte=0"`
	PortionSize  string  `json:"portion_size" validate:"required"`
	Available    *bool   `json:"available"`
}

// IsAvailable resolves the availability flag, defaulting to true when the
// payload omits it.
func (p MenuItemPayload) IsAvailable() bool {
	if p.Available == nil {
		return true
	}
	return *p.Available
}

// MenuItemFilter narrows list queries; all supplied filters apply
// conjunctively.
type MenuItemFilter struct {
	RestaurantID *int
	CategoryID   *int
	Available    *bool
	MinPrice     *float64
	MaxPrice     *float64
}
