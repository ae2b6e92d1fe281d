package assist

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pizzaassist/internal/catalog"
)

// ErrNoSnapshot marks the best-effort size patch being skipped because no
// menu snapshot was available to supply the size range.
var ErrNoSnapshot = errors.New("no menu snapshot for size patch")

// ErrMenuUnavailable wraps a catalog read failure so the handler can map
// it to a service-unavailable response.
var ErrMenuUnavailable = errors.New("menu unavailable")

// Service runs the planning pipeline: snapshot, prompt, completion call,
// parse, size patch, validate. Stateless; safe for concurrent use.
type Service struct {
	repo catalog.Repository
	chat ChatClient
}

func NewService(repo catalog.Repository, chat ChatClient) *Service {
	return &Service{repo: repo, chat: chat}
}

// --------------------------------------------------
// PLAN CART
// --------------------------------------------------

// PlanCart translates one utterance into a validated cart plan. The same
// snapshot grounds both the prompt and the validation, so the returned
// plan can only reference entities that exist in the menu the model saw.
//
// A gateway failure is returned to the caller; everything after a
// successful completion call recovers locally and still yields a plan.
func (s *Service) PlanCart(ctx context.Context, req CartRequest) (CartPlan, error) {

	menu, err := s.repo.Snapshot(ctx)
	if err != nil {
		return CartPlan{}, fmt.Errorf("%w: %v", ErrMenuUnavailable, err)
	}

	system, menuContext := BuildCartPrompt(menu)

	raw, err := s.chat.Complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "system", Content: menuContext},
		{Role: "user", Content: req.Utterance},
	})
	if err != nil {
		return CartPlan{}, err
	}

	plan := ParsePlan(raw)

	// Best-effort: the model often leaves size at the default even when
	// the utterance names one; rescue it deterministically.
	if patched, err := patchSizes(plan, req.Utterance, menu); err != nil {
		log.Printf("assist: size patch skipped: %v", err)
	} else {
		plan = patched
	}

	return ValidatePlan(plan, menu), nil
}

// patchSizes overwrites the size of every add_pizza action that the model
// left unspecified or at the default, whenever the utterance itself names
// a size.
func patchSizes(plan CartPlan, utterance string, menu *catalog.MenuSnapshot) (CartPlan, error) {
	if menu == nil {
		return plan, ErrNoSnapshot
	}

	size, ok := ExtractSize(utterance, menu.Sizes)
	if !ok {
		return plan, nil
	}

	for i, a := range plan.Actions {
		if a.Type == ActionAddPizza && (a.Size <= 0 || a.Size == menu.Sizes.Default) {
			plan.Actions[i].Size = size
		}
	}

	return plan, nil
}
