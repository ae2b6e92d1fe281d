package assist

import (
	"regexp"
	"strconv"
	"strings"

	"pizzaassist/internal/catalog"
)

// Matches a one-or-two digit number with an optional inch marker: 12,
// 12", 12in, 12 inch, 12-inch, 12 inches.
var sizePattern = regexp.MustCompile(`\b(\d{1,2})\s*-?\s*("|inches|inch|in)?\b`)

// ExtractSize pulls an explicit pizza size out of the raw utterance. Word
// sizes win over numeric ones; a numeric size is accepted only when it
// falls inside the valid range. Total function: no match means (0, false).
//
// This exists because the upstream model tends to fall back to the default
// size even when the utterance names one; the pipeline uses this as a
// deterministic patch after parsing.
func ExtractSize(utterance string, sizes catalog.SizeRange) (int, bool) {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return 0, false
	}

	switch {
	case strings.Contains(text, "small"):
		return sizes.Min, true
	case strings.Contains(text, "medium"):
		return sizes.Default, true
	case strings.Contains(text, "large"):
		return sizes.Max, true
	}

	m := sizePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if n < sizes.Min || n > sizes.Max {
		return 0, false
	}

	return n, true
}
