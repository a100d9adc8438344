package models

// Customer is a row of the customer dimension. Customers are read-only:
// the ETL loader owns the write path.
type Customer struct {
	CustomerID     int     `json:"customer_id"`
	Gender         string  `json:"gender"`
	AgeGroup       string  `json:"age_group"`
	AvgSpending    float64 `json:"avg_spending"`
	VisitFrequency int     `json:"visit_frequency"`
}

// CustomerFilter narrows customer list queries.
type CustomerFilter struct {
	AgeGroup    string
	Gender      string
	MinSpending *float64
}
