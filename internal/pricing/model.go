// Package pricing loads the exported regression artifact and serves price
// predictions. The artifact is immutable for the process lifetime: it is
// read once at startup and only ever read afterwards.
package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrModelUnavailable is returned when the artifact failed to load at
// process start.
var ErrModelUnavailable = errors.New("pricing model not available")

// Feature names as used during training. The categorical tables and numeric
// weights in the artifact are keyed by these.
const (
	FeatureLocation       = "location"
	FeatureVenueType      = "type"
	FeatureAgeGroup       = "age_group"
	FeatureCategoryID     = "category_id"
	FeaturePortionBucket  = "portion_bucket"
	FeaturePortionNumeric = "portion_numeric"
	FeatureBasePrice      = "base_price"
	FeatureCost           = "cost"
)

// Model is the score-table export of the trained regressor: an intercept,
// one contribution table per categorical feature, and one weight per numeric
// feature. Unknown categorical levels contribute nothing, which mirrors how
// the trained model scores unseen categories.
type Model struct {
	Algorithm   string                        `json:"algorithm"`
	Version     string                        `json:"model_version"`
	TrainedOn   string                        `json:"trained_on"`
	RMSE        float64                       `json:"rmse"`
	Intercept   float64                       `json:"intercept"`
	Categorical map[string]map[string]float64 `json:"categorical"`
	Numeric     map[string]float64            `json:"numeric"`
}

// Features is a single model input vector.
type Features struct {
	Location       string
	VenueType      string
	AgeGroup       string
	CategoryID     string
	PortionBucket  string
	PortionNumeric float64
	BasePrice      float64
	Cost           float64
}

// LoadModel reads and validates the artifact at path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if m.Categorical == nil || m.Numeric == nil {
		return nil, fmt.Errorf("model artifact %s is missing score tables", path)
	}
	if m.Algorithm == "" {
		m.Algorithm = "CatBoost"
	}

	return &m, nil
}

// Predict scores a feature vector. The result is clamped at zero and
// rounded to two decimals.
func (m *Model) Predict(f Features) float64 {
	score := m.Intercept

	score += m.contribution(FeatureLocation, f.Location)
	score += m.contribution(FeatureVenueType, f.VenueType)
	score += m.contribution(FeatureAgeGroup, f.AgeGroup)
	score += m.contribution(FeatureCategoryID, f.CategoryID)
	score += m.contribution(FeaturePortionBucket, f.PortionBucket)

	score += m.Numeric[FeaturePortionNumeric] * f.PortionNumeric
	score += m.Numeric[FeatureBasePrice] * f.BasePrice
	score += m.Numeric[FeatureCost] * f.Cost

	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}

// ConfidenceNote describes the artifact behind a prediction.
func (m *Model) ConfidenceNote() string {
	return fmt.Sprintf("Prediction based on %s model (RMSE: %.2f) trained on Yerevan market data",
		m.Algorithm, m.RMSE)
}

func (m *Model) contribution(feature, level string) float64 {
	table, ok := m.Categorical[feature]
	if !ok {
		return 0
	}
	return table[level]
}
