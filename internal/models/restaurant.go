package models

// Restaurant is a row of the restaurant dimension.
type Restaurant struct {
	RestaurantID     int     `json:"restaurant_id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	VenueType        string  `json:"venue_type"`
	AvgCustomerCount int     `json:"avg_customer_count"`
	Rating           float64 `json:"rating"`
	OwnerContact     string  `json:"owner_contact"`
}

// RestaurantPayload is the request body for creating or replacing a
// restaurant. Updates use full-replace semantics, so the same schema
// serves both.
type RestaurantPayload struct {
	Name             string  `json:"name" validate:"required,min=1,max=255"`
	Location         string  `json:"location" validate:"required"`
	VenueType        string  `json:"venue_type" validate:"required"`
	AvgCustomerCount int     `json:"avg_customer_count" validate:"gte=0"`
	Rating           float64 `json:"rating" validate:"gte=0,lte=5"`
	OwnerContact     string  `json:"owner_contact" validate:"required"`
}

// RestaurantFilter narrows list queries. Zero values mean "no filter";
// all supplied filters apply conjunctively.
type RestaurantFilter struct {
	Location  string
	VenueType string
	MinRating *float64
}
