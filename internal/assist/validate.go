package assist

import "pizzaassist/internal/catalog"

// ValidatePlan enforces the range and referential invariants on a parsed
// plan against the snapshot the prompt was built from. Total and
// idempotent: invalid values are clamped or dropped, never reported.
// Action order is preserved.
//
// add_pizza: size clamped into the valid range, quantity floored to 1,
// unknown specialId drops the whole action, unknown toppingIds are
// silently filtered. clear_cart passes through. Anything else (including
// the inactive edit action types) is dropped.
func ValidatePlan(plan CartPlan, menu *catalog.MenuSnapshot) CartPlan {

	out := CartPlan{Actions: make([]CartAction, 0, len(plan.Actions))}

	for _, a := range plan.Actions {
		switch a.Type {

		case ActionClearCart:
			out.Actions = append(out.Actions, CartAction{Type: ActionClearCart})

		case ActionAddPizza:
			if a.SpecialID == nil || !menu.HasSpecial(*a.SpecialID) {
				continue
			}

			if a.Size < menu.Sizes.Min {
				a.Size = menu.Sizes.Min
			}
			if a.Size > menu.Sizes.Max {
				a.Size = menu.Sizes.Max
			}
			if a.Quantity < 1 {
				a.Quantity = 1
			}

			var toppings []int
			for _, id := range a.ToppingIDs {
				if menu.HasTopping(id) {
					toppings = append(toppings, id)
				}
			}
			a.ToppingIDs = toppings

			out.Actions = append(out.Actions, a)
		}
	}

	return out
}
