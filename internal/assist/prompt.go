package assist

import (
	"encoding/json"
	"fmt"

	"pizzaassist/internal/catalog"
)

// BuildCartPrompt turns the menu snapshot into the two system messages
// sent ahead of the user utterance: a fixed rule block and the serialized
// menu the model is allowed to reference. Deterministic: the same snapshot
// always produces the same prompt.
func BuildCartPrompt(menu *catalog.MenuSnapshot) (system string, menuContext string) {

	system = fmt.Sprintf(`You are a strict pizza cart planner.
Only output a single JSON object matching this schema: {"actions": [{"type": "add_pizza|clear_cart", "specialId": number?, "quantity": number, "size": number, "toppingIds": number[]?}] }.
Rules:
- Choose specialId ONLY from the provided MENU JSON below.
- Choose toppingIds ONLY from the provided MENU JSON below.
- Select the special that best matches the user's request by name and description.
- Map size mentions like 12, 12" or 12-inch to the integer size field.
- If size is not specified, use the default size.
- Quantity defaults to 1 if not specified.
- Do NOT invent items. Do NOT add unrelated toppings. Include toppings only if explicitly requested or clearly implied (e.g., 'extra cheese').
- If the request is ambiguous between specials, prefer the one that explicitly contains the requested topping in its name/description, otherwise the most generic match.
- Valid size range is %d-%d. Clamp into range if needed.
- If the user requests multiple pizzas (e.g., 'two pepperoni'), create one add_pizza action with quantity set accordingly.
- Never include commentary or extra fields; only the JSON object is allowed.`,
		menu.Sizes.Min, menu.Sizes.Max)

	menuContext = "MENU:\n" + serializeMenu(menu)
	return system, menuContext
}

func serializeMenu(menu *catalog.MenuSnapshot) string {

	type special struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		BasePrice   float64 `json:"basePrice"`
	}
	type topping struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	specials := make([]special, 0, len(menu.Specials))
	for _, s := range menu.Specials {
		specials = append(specials, special{s.ID, s.Name, s.Description, s.BasePrice})
	}
	toppings := make([]topping, 0, len(menu.Toppings))
	for _, t := range menu.Toppings {
		toppings = append(toppings, topping{t.ID, t.Name, t.Price})
	}

	doc := map[string]any{
		"sizes": map[string]int{
			"min":     menu.Sizes.Min,
			"max":     menu.Sizes.Max,
			"default": menu.Sizes.Default,
		},
		"specials": specials,
		"toppings": toppings,
	}

	// Marshal cannot fail on this shape
	out, _ := json.Marshal(doc)
	return string(out)
}
