package assist

import (
	"reflect"
	"testing"
)

func TestParsePlanWellFormed(t *testing.T) {
	raw := `{"actions":[{"type":"add_pizza","specialId":1,"quantity":2,"size":12,"toppingIds":[7]}]}`

	plan := ParsePlan(raw)

	if len(plan.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(plan.Actions))
	}
	a := plan.Actions[0]
	if a.Type != ActionAddPizza || a.SpecialID == nil || *a.SpecialID != 1 ||
		a.Quantity != 2 || a.Size != 12 || !reflect.DeepEqual(a.ToppingIDs, []int{7}) {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestParsePlanCaseInsensitiveFields(t *testing.T) {
	raw := `{"Actions":[{"Type":"clear_cart"}]}`

	plan := ParsePlan(raw)

	if len(plan.Actions) != 1 || plan.Actions[0].Type != ActionClearCart {
		t.Fatalf("expected clear_cart, got %+v", plan.Actions)
	}
}

func TestParsePlanFailSoft(t *testing.T) {
	for _, raw := range []string{
		"not json",
		"",
		"   ",
		"null",
		`"a json string"`,
		`{"actions": "nope"}`,
		`[1,2,3]`,
		`{"actions":[{"type":"add_pizza","quantity":"two"}]}`,
	} {
		plan := ParsePlan(raw)
		if plan.Actions == nil {
			t.Errorf("ParsePlan(%q): actions must never be nil", raw)
		}
		if len(plan.Actions) != 0 {
			t.Errorf("ParsePlan(%q): expected empty plan, got %+v", raw, plan.Actions)
		}
	}
}

func TestParsePlanNullActions(t *testing.T) {
	plan := ParsePlan(`{"actions": null}`)
	if plan.Actions == nil || len(plan.Actions) != 0 {
		t.Fatalf("expected empty non-nil actions, got %#v", plan.Actions)
	}
}
