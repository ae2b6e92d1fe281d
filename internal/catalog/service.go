package catalog

import (
	"context"
	"strings"
)

// SearchResult is the wire shape for menu search. Kind decides which
// optional fields are set: specials carry Description and SizePrices,
// toppings carry Price only.
type SearchResult struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Description *string         `json:"description,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	SizePrices  map[int]float64 `json:"sizePrices,omitempty"`
}

const (
	KindSpecial = "special"
	KindTopping = "topping"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// SEARCH (SPECIALS FIRST, THEN TOPPINGS)
// --------------------------------------------------

// Search runs a substring lookup over the menu. Queries shorter than two
// characters after trimming skip the repository entirely and return an
// empty result set.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []SearchResult{}, nil
	}

	sizes := DefaultSizeRange()

	specials, err := s.repo.SearchSpecials(ctx, query)
	if err != nil {
		return nil, err
	}

	toppings, err := s.repo.SearchToppings(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(specials)+len(toppings))

	for _, sp := range specials {
		sp := sp
		price := sp.BasePrice
		results = append(results, SearchResult{
			ID:          sp.ID,
			Name:        sp.Name,
			Kind:        KindSpecial,
			Description: &sp.Description,
			Price:       &price,
			SizePrices: map[int]float64{
				sizes.Min:     sp.PriceForSize(sizes.Min, sizes),
				sizes.Default: sp.BasePrice,
				sizes.Max:     sp.PriceForSize(sizes.Max, sizes),
			},
		})
	}

	for _, t := range toppings {
		t := t
		price := t.Price
		results = append(results, SearchResult{
			ID:    t.ID,
			Name:  t.Name,
			Kind:  KindTopping,
			Price: &price,
		})
	}

	return results, nil
}
