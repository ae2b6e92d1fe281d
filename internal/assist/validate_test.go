package assist

import (
	"reflect"
	"testing"

	"pizzaassist/internal/catalog"
)

func testMenu() *catalog.MenuSnapshot {
	return &catalog.MenuSnapshot{
		Sizes: catalog.DefaultSizeRange(),
		Specials: []catalog.Special{
			{ID: 1, Name: "Margherita", BasePrice: 9.99},
			{ID: 2, Name: "Classic Pepperoni", BasePrice: 10.50},
		},
		Toppings: []catalog.Topping{
			{ID: 7, Name: "Extra cheese", Price: 2.50},
			{ID: 8, Name: "Mushrooms", Price: 1.00},
		},
	}
}

func intp(n int) *int { return &n }

func TestValidatePlanClampsAndFloors(t *testing.T) {
	menu := testMenu()

	plan := ValidatePlan(CartPlan{Actions: []CartAction{
		{Type: ActionAddPizza, SpecialID: intp(1), Quantity: 0, Size: 99},
		{Type: ActionAddPizza, SpecialID: intp(2), Quantity: -3, Size: 2},
	}}, menu)

	if len(plan.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(plan.Actions))
	}
	if plan.Actions[0].Size != menu.Sizes.Max || plan.Actions[0].Quantity != 1 {
		t.Fatalf("expected clamp to max and quantity 1, got %+v", plan.Actions[0])
	}
	if plan.Actions[1].Size != menu.Sizes.Min || plan.Actions[1].Quantity != 1 {
		t.Fatalf("expected clamp to min and quantity 1, got %+v", plan.Actions[1])
	}
}

func TestValidatePlanDropsUnknownSpecial(t *testing.T) {
	plan := ValidatePlan(CartPlan{Actions: []CartAction{
		{Type: ActionAddPizza, SpecialID: intp(42), Quantity: 1, Size: 12},
		{Type: ActionAddPizza, Quantity: 1, Size: 12}, // no specialId at all
		{Type: ActionClearCart},
	}}, testMenu())

	if len(plan.Actions) != 1 || plan.Actions[0].Type != ActionClearCart {
		t.Fatalf("expected only clear_cart to survive, got %+v", plan.Actions)
	}
}

func TestValidatePlanFiltersUnknownToppings(t *testing.T) {
	plan := ValidatePlan(CartPlan{Actions: []CartAction{
		{Type: ActionAddPizza, SpecialID: intp(1), Quantity: 1, Size: 12, ToppingIDs: []int{7, 99, 8}},
	}}, testMenu())

	if len(plan.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(plan.Actions))
	}
	if !reflect.DeepEqual(plan.Actions[0].ToppingIDs, []int{7, 8}) {
		t.Fatalf("expected toppings [7 8], got %v", plan.Actions[0].ToppingIDs)
	}
}

func TestValidatePlanDropsUnknownActionTypes(t *testing.T) {
	plan := ValidatePlan(CartPlan{Actions: []CartAction{
		{Type: "update_size", TargetIdx: intp(0), NewSize: intp(14)},
		{Type: "order_salad"},
		{Type: ActionClearCart},
	}}, testMenu())

	if len(plan.Actions) != 1 || plan.Actions[0].Type != ActionClearCart {
		t.Fatalf("expected unknown types dropped, got %+v", plan.Actions)
	}
}

func TestValidatePlanPreservesOrder(t *testing.T) {
	plan := ValidatePlan(CartPlan{Actions: []CartAction{
		{Type: ActionClearCart},
		{Type: ActionAddPizza, SpecialID: intp(99), Quantity: 1, Size: 12}, // dropped
		{Type: ActionAddPizza, SpecialID: intp(1), Quantity: 1, Size: 12},
		{Type: ActionAddPizza, SpecialID: intp(2), Quantity: 1, Size: 12},
	}}, testMenu())

	if len(plan.Actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(plan.Actions))
	}
	if plan.Actions[0].Type != ActionClearCart ||
		*plan.Actions[1].SpecialID != 1 ||
		*plan.Actions[2].SpecialID != 2 {
		t.Fatalf("order not preserved: %+v", plan.Actions)
	}
}

func TestValidatePlanIdempotent(t *testing.T) {
	menu := testMenu()
	in := CartPlan{Actions: []CartAction{
		{Type: ActionClearCart},
		{Type: ActionAddPizza, SpecialID: intp(1), Quantity: 2, Size: 14, ToppingIDs: []int{7}},
	}}

	once := ValidatePlan(in, menu)
	twice := ValidatePlan(once, menu)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("validation not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
