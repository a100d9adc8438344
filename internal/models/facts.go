package models

import "time"

// Sale is a row of the append-only sales fact table, produced by the ETL
// loader and referenced by the analytics queries.
type Sale struct {
	SaleID       int       `json:"sale_id"`
	ProductID    int       `json:"product_id"`
	RestaurantID int       `json:"restaurant_id"`
	CustomerID   int       `json:"customer_id"`
	Date         time.Time `json:"date"`
	UnitsSold    int       `json:"units_sold"`
	PriceSold    float64   `json:"price_sold"`
	Revenue      float64   `json:"revenue"`
}

// MarketPrice is a row of the append-only market benchmark fact table.
type MarketPrice struct {
	PriceID   int       `json:"price_id"`
	Date      time.Time `json:"date"`
	MarketID  int       `json:"market_id"`
	Category  string    `json:"category"`
	Commodity string    `json:"commodity"`
	Unit      string    `json:"unit"`
	PriceFlag string    `json:"priceflag"`
	PriceType string    `json:"pricetype"`
	Currency  string    `json:"currency"`
	Price     float64   `json:"price"`
	USDPrice  float64   `json:"usdprice"`
}
