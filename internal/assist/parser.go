package assist

import (
	"encoding/json"
	"log"
	"strings"
)

// ParsePlan deserializes the model's raw output into a CartPlan. The model
// violates the schema from time to time, so this never propagates a
// failure: anything that does not parse degrades to an empty plan and the
// raw text is logged for diagnosis. Field matching is case-insensitive
// (encoding/json semantics), matching what loosely-shaped model output
// needs.
func ParsePlan(raw string) CartPlan {

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return EmptyPlan()
	}

	var plan CartPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		log.Printf("assist: discarding malformed plan output: %v: %q", err, truncate(raw, 500))
		return EmptyPlan()
	}

	if plan.Actions == nil {
		plan.Actions = []CartAction{}
	}

	return plan
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
