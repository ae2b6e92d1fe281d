package assist

// Action types the planner is instructed to emit.
const (
	ActionAddPizza  = "add_pizza"
	ActionClearCart = "clear_cart"
)

// CartAction is one cart mutation. Only add_pizza and clear_cart are ever
// produced by the planning prompt; the targetIdx-addressed edit fields
// (NewSize, AddToppingIDs, ...) are part of the declared wire contract but
// currently inactive — nothing instructs the model to emit them and the
// validator drops action types it does not recognize.
type CartAction struct {
	Type       string `json:"type"`
	SpecialID  *int   `json:"specialId,omitempty"`
	Quantity   int    `json:"quantity"`
	Size       int    `json:"size"`
	ToppingIDs []int  `json:"toppingIds,omitempty"`

	TargetIdx        *int  `json:"targetIdx,omitempty"`
	NewSize          *int  `json:"newSize,omitempty"`
	AddToppingIDs    []int `json:"addToppingIds,omitempty"`
	RemoveToppingIDs []int `json:"removeToppingIds,omitempty"`
	SetToppingIDs    []int `json:"setToppingIds,omitempty"`
}

// CartPlan is an ordered action sequence. Actions are applied in order by
// the cart engine; an empty plan means no actionable intent was found.
type CartPlan struct {
	Actions []CartAction `json:"actions"`
}

func EmptyPlan() CartPlan {
	return CartPlan{Actions: []CartAction{}}
}

// CartSummaryItem describes one line of the caller's current cart. It is
// advisory context for edit-style requests and is never mutated here.
type CartSummaryItem struct {
	Idx        int    `json:"idx"`
	SpecialID  int    `json:"specialId"`
	Size       int    `json:"size"`
	ToppingIDs []int  `json:"toppingIds"`
	Label      string `json:"label,omitempty"`
}

type CartRequest struct {
	Utterance string            `json:"utterance"`
	UserID    string            `json:"userId"`
	Cart      []CartSummaryItem `json:"cart,omitempty"`
}
