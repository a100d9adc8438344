package models

// HistoricalAnalytics aggregates observed pricing and sales for a menu item
// in a location.
type HistoricalAnalytics struct {
	MenuItem  string  `json:"menu_item"`
	Location  string  `json:"location"`
	AvgPrice  float64 `json:"avg_price"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	UnitsSold int     `json:"units_sold"`
	Market    string  `json:"market"`
	Season    string  `json:"season"`
}

// Forecast is a recommended price over a horizon in days.
type Forecast struct {
	MenuItem         string  `json:"menu_item"`
	RecommendedPrice float64 `json:"recommended_price"`
	Confidence       float64 `json:"confidence"`
	HorizonDays      int     `json:"horizon_days"`
	Trend            string  `json:"trend"`
}
