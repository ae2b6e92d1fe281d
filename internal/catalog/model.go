package catalog

// Pizza size bounds, in inches. The default size is the one the store
// prices its specials at; other sizes scale linearly from it.
const (
	MinimumSize = 9
	DefaultSize = 12
	MaximumSize = 17
)

type Special struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type Topping struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type SizeRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// MenuSnapshot is the menu as seen by one request. It is read-only once
// built; the same snapshot must be used for prompting and validation so a
// plan can never reference an entity the prompt never saw.
type MenuSnapshot struct {
	Sizes    SizeRange `json:"sizes"`
	Specials []Special `json:"specials"`
	Toppings []Topping `json:"toppings"`
}

func DefaultSizeRange() SizeRange {
	return SizeRange{Min: MinimumSize, Max: MaximumSize, Default: DefaultSize}
}

// PriceForSize scales a special's base price to the requested size.
// Price at the default size is the base price itself.
func (s Special) PriceForSize(size int, sizes SizeRange) float64 {
	return float64(size) / float64(sizes.Default) * s.BasePrice
}

func (m *MenuSnapshot) HasSpecial(id int) bool {
	for _, s := range m.Specials {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (m *MenuSnapshot) HasTopping(id int) bool {
	for _, t := range m.Toppings {
		if t.ID == id {
			return true
		}
	}
	return false
}
