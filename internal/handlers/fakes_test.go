package handlers

import (
	"context"
	"sort"
	"strings"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
)

// In-memory repositories backing the handler tests.

type fakeRestaurantRepo struct {
	nextID int
	rows   map[int]models.Restaurant
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{nextID: 1, rows: make(map[int]models.Restaurant)}
}

func (f *fakeRestaurantRepo) List(_ context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, 0)
	for _, r := range f.rows {
		if filter.Location != "" && !strings.EqualFold(r.Location, filter.Location) {
			continue
		}
		if filter.VenueType != "" && !strings.EqualFold(r.VenueType, filter.VenueType) {
			continue
		}
		if filter.MinRating != nil && r.Rating < *filter.MinRating {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RestaurantID < out[j].RestaurantID })
	return out, nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int) (*models.Restaurant, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}
	return &r, nil
}

func (f *fakeRestaurantRepo) Create(_ context.Context, p models.RestaurantPayload) (*models.Restaurant, error) {
	r := models.Restaurant{
		RestaurantID:     f.nextID,
		Name:             p.Name,
		Location:         p.Location,
		VenueType:        p.VenueType,
		AvgCustomerCount: p.AvgCustomerCount,
		Rating:           p.Rating,
		OwnerContact:     p.OwnerContact,
	}
	f.rows[f.nextID] = r
	f.nextID++
	return &r, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, id int, p models.RestaurantPayload) (*models.Restaurant, error) {
	if _, ok := f.rows[id]; !ok {
		return nil, repository.ErrRestaurantNotFound
	}
	r := models.Restaurant{
		RestaurantID:     id,
		Name:             p.Name,
		Location:         p.Location,
		VenueType:        p.VenueType,
		AvgCustomerCount: p.AvgCustomerCount,
		Rating:           p.Rating,
		OwnerContact:     p.OwnerContact,
	}
	f.rows[id] = r
	return &r, nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrRestaurantNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeMenuItemRepo struct {
	nextID      int
	rows        map[int]models.MenuItem
	restaurants map[int]bool
}

func newFakeMenuItemRepo(restaurantIDs ...int) *fakeMenuItemRepo {
	restaurants := make(map[int]bool)
	for _, id := range restaurantIDs {
		restaurants[id] = true
	}
	return &fakeMenuItemRepo{nextID: 1, rows: make(map[int]models.MenuItem), restaurants: restaurants}
}

func (f *fakeMenuItemRepo) List(_ context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	out := make([]models.MenuItem, 0)
	for _, m := range f.rows {
		if filter.RestaurantID != nil && m.RestaurantID != *filter.RestaurantID {
			continue
		}
		if filter.CategoryID != nil && m.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Available != nil && m.Available != *filter.Available {
			continue
		}
		if filter.MinPrice != nil && m.BasePrice < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && m.BasePrice > *filter.MaxPrice {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *fakeMenuItemRepo) GetByID(_ context.Context, id int) (*models.MenuItem, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}
	return &m, nil
}

func (f *fakeMenuItemRepo) GetByName(_ context.Context, name string) (*models.MenuItem, error) {
	ids := make([]int, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if strings.EqualFold(f.rows[id].ProductName, name) {
			m := f.rows[id]
			return &m, nil
		}
	}
	return nil, repository.ErrMenuItemNotFound
}

func (f *fakeMenuItemRepo) Create(_ context.Context, p models.MenuItemPayload) (*models.MenuItem, error) {
	if !f.restaurants[p.RestaurantID] {
		return nil, repository.ErrInvalidReference
	}
	m := models.MenuItem{
		ProductID:    f.nextID,
		RestaurantID: p.RestaurantID,
		ProductName:  p.ProductName,
		CategoryID:   p.CategoryID,
		BasePrice:    p.BasePrice,
		Cost:         p.Cost,
		PortionSize:  p.PortionSize,
		Available:    p.IsAvailable(),
	}
	f.rows[f.nextID] = m
	f.nextID++
	return &m, nil
}

func (f *fakeMenuItemRepo) Update(_ context.Context, id int, p models.MenuItemPayload) (*models.MenuItem, error) {
	if _, ok := f.rows[id]; !ok {
		return nil, repository.ErrMenuItemNotFound
	}
	if !f.restaurants[p.RestaurantID] {
		return nil, repository.ErrInvalidReference
	}
	m := models.MenuItem{
		ProductID:    id,
		RestaurantID: p.RestaurantID,
		ProductName:  p.ProductName,
		CategoryID:   p.CategoryID,
		BasePrice:    p.BasePrice,
		Cost:         p.Cost,
		PortionSize:  p.PortionSize,
		Available:    p.IsAvailable(),
	}
	f.rows[id] = m
	return &m, nil
}

func (f *fakeMenuItemRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrMenuItemNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeCustomerRepo struct {
	rows map[int]models.Customer
}

func (f *fakeCustomerRepo) List(_ context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	out := make([]models.Customer, 0)
	for _, c := range f.rows {
		if filter.AgeGroup != "" && c.AgeGroup != filter.AgeGroup {
			continue
		}
		if filter.Gender != "" && !strings.EqualFold(c.Gender, filter.Gender) {
			continue
		}
		if filter.MinSpending != nil && c.AvgSpending < *filter.MinSpending {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int) (*models.Customer, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return &c, nil
}

type fakeAnalyticsRepo struct {
	stats     map[string]repository.PriceStats
	units     map[string]int
	seasons   map[string]string
	venues    []string
	itemNames []string
}

func (f *fakeAnalyticsRepo) PriceStats(_ context.Context, name string) (*repository.PriceStats, error) {
	s, ok := f.stats[strings.ToLower(name)]
	if !ok {
		return &repository.PriceStats{}, nil
	}
	return &s, nil
}

func (f *fakeAnalyticsRepo) UnitsSold(_ context.Context, name string) (int, error) {
	return f.units[strings.ToLower(name)], nil
}

func (f *fakeAnalyticsRepo) LatestSeason(_ context.Context, name string) (string, error) {
	return f.seasons[strings.ToLower(name)], nil
}

func (f *fakeAnalyticsRepo) VenueTypes(_ context.Context) ([]string, error) {
	return f.venues, nil
}

func (f *fakeAnalyticsRepo) MenuItemNames(_ context.Context) ([]string, error) {
	return f.itemNames, nil
}
