package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/service"
	"github.com/narekn7/yerevan-pricing/pkg/logger"
)

func newCustomerRouter() *chi.Mux {
	repo := &fakeCustomerRepo{rows: map[int]models.Customer{
		1: {CustomerID: 1, Gender: "F", AgeGroup: "25-34", AvgSpending: 3500, VisitFrequency: 4},
		2: {CustomerID: 2, Gender: "M", AgeGroup: "35-44", AvgSpending: 2100, VisitFrequency: 2},
		3: {CustomerID: 3, Gender: "F", AgeGroup: "25-34", AvgSpending: 1200, VisitFrequency: 1},
	}}
	handler := NewCustomerHandler(service.NewCustomerService(repo), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/customers", handler.List)
	r.Get("/customers/{customerId}", handler.Get)
	return r
}

func TestListCustomers_Filters(t *testing.T) {
	r := newCustomerRouter()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{"no filter", "", []int{1, 2, 3}},
		{"age group", "?age_group=25-34", []int{1, 3}},
		{"gender case-insensitive", "?gender=f", []int{1, 3}},
		{"min spending", "?min_spending=2000", []int{1, 2}},
		{"conjunctive", "?age_group=25-34&min_spending=2000", []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/customers"+tc.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var got []models.Customer
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d customers, got %d", len(tc.wantIDs), len(got))
			}
			for i, id := range tc.wantIDs {
				if got[i].CustomerID != id {
					t.Errorf("row %d: expected customer %d, got %d", i, id, got[i].CustomerID)
				}
			}
		})
	}
}

func TestListCustomers_NegativeMinSpending(t *testing.T) {
	r := newCustomerRouter()

	w := doJSON(t, r, http.MethodGet, "/customers?min_spending=-5", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestGetCustomer(t *testing.T) {
	r := newCustomerRouter()

	w := doJSON(t, r, http.MethodGet, "/customers/2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got models.Customer
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.CustomerID != 2 || got.AgeGroup != "35-44" {
		t.Errorf("unexpected customer: %+v", got)
	}
}

func TestGetCustomer_Missing(t *testing.T) {
	r := newCustomerRouter()

	w := doJSON(t, r, http.MethodGet, "/customers/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["detail"] != "customer_id=99 not found" {
		t.Errorf("unexpected detail: %q", resp["detail"])
	}
}
