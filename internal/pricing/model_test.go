package pricing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModel(t *testing.T) {
	m, err := LoadModel(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	assert.Equal(t, "CatBoost", m.Algorithm)
	assert.Equal(t, "2024.12", m.Version)
	assert.InDelta(t, 196.74, m.RMSE, 1e-9)
	assert.InDelta(t, 452.18, m.Intercept, 1e-9)
	assert.Contains(t, m.Categorical, FeatureLocation)
	assert.Contains(t, m.Numeric, FeatureBasePrice)
}

func TestLoadModel_MissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join("testdata", "no_such_model.json"))
	require.Error(t, err)
}

func TestLoadModel_MissingScoreTables(t *testing.T) {
	_, err := LoadModel(filepath.Join("testdata", "missing_tables.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score tables")
}

func TestModelPredict(t *testing.T) {
	m := &Model{
		Intercept: 100,
		Categorical: map[string]map[string]float64{
			FeatureLocation:      {"Kentron": 50},
			FeatureVenueType:     {"cafe": 20},
			FeatureAgeGroup:      {"25-34": 10},
			FeatureCategoryID:    {"1": 5},
			FeaturePortionBucket: {"large": 30},
		},
		Numeric: map[string]float64{
			FeaturePortionNumeric: 0.1,
			FeatureBasePrice:      0.5,
			FeatureCost:           0.2,
		},
	}

	tests := []struct {
		name     string
		features Features
		want     float64
	}{
		{
			name: "all levels known",
			features: Features{
				Location: "Kentron", VenueType: "cafe", AgeGroup: "25-34",
				CategoryID: "1", PortionBucket: "large",
				PortionNumeric: 100, BasePrice: 1000, Cost: 400,
			},
			// 100+50+20+10+5+30 + 10+500+80
			want: 805,
		},
		{
			name: "unknown levels contribute zero",
			features: Features{
				Location: "Davtashen", VenueType: "bistro", AgeGroup: "55+",
				CategoryID: "9", PortionBucket: "tiny",
				PortionNumeric: 100, BasePrice: 1000, Cost: 400,
			},
			want: 690,
		},
		{
			name:     "zero vector is the intercept",
			features: Features{},
			want:     100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, m.Predict(tc.features), 1e-9)
		})
	}
}

func TestModelPredict_ClampedAtZero(t *testing.T) {
	m := &Model{
		Intercept:   -500,
		Categorical: map[string]map[string]float64{},
		Numeric:     map[string]float64{},
	}
	assert.Equal(t, 0.0, m.Predict(Features{}))
}

func TestModelPredict_RoundedToCents(t *testing.T) {
	m := &Model{
		Intercept:   0,
		Categorical: map[string]map[string]float64{},
		Numeric:     map[string]float64{FeatureBasePrice: 0.333},
	}
	assert.InDelta(t, 333.0, m.Predict(Features{BasePrice: 1000}), 1e-9)
	assert.InDelta(t, 3.33, m.Predict(Features{BasePrice: 10}), 1e-9)
}

func TestConfidenceNote(t *testing.T) {
	m := &Model{Algorithm: "CatBoost", RMSE: 196.74}
	assert.Equal(t,
		"Prediction based on CatBoost model (RMSE: 196.74) trained on Yerevan market data",
		m.ConfidenceNote())
}
