package models

// PricePredictionRequest carries the query parameters of a predict-price
// call. It is ephemeral and never persisted.
type PricePredictionRequest struct {
	ProductName string
	Location    string
	VenueType   string
	PortionSize string
	AgeGroup    string
}

// PricePredictionResponse is the inference result returned to the caller.
type PricePredictionResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	ProductName    string  `json:"product_name"`
	Location       string  `json:"location"`
	VenueType      string  `json:"venue_type"`
	PortionSize    string  `json:"portion_size"`
	AgeGroup       string  `json:"age_group"`
	ConfidenceNote string  `json:"confidence_note"`
}
