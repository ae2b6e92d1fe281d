package catalog

import (
	"context"
	"strings"
)

// InMemoryRepository serves the menu from slices. Used by tests and by
// local runs without a database.
type InMemoryRepository struct {
	Specials []Special
	Toppings []Topping

	// Err, when set, is returned by every call. Lets tests simulate a
	// catalog outage.
	Err error
}

func NewInMemoryRepository(specials []Special, toppings []Topping) *InMemoryRepository {
	return &InMemoryRepository{Specials: specials, Toppings: toppings}
}

func (r *InMemoryRepository) Snapshot(ctx context.Context) (*MenuSnapshot, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return &MenuSnapshot{
		Sizes:    DefaultSizeRange(),
		Specials: append([]Special(nil), r.Specials...),
		Toppings: append([]Topping(nil), r.Toppings...),
	}, nil
}

func (r *InMemoryRepository) SearchSpecials(ctx context.Context, query string) ([]Special, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	q := strings.ToLower(query)
	var out []Special
	for _, s := range r.Specials {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) SearchToppings(ctx context.Context, query string) ([]Topping, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	q := strings.ToLower(query)
	var out []Topping
	for _, t := range r.Toppings {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out, nil
}
