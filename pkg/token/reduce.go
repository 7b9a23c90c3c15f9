package token

import (
	"slices"
	"strings"
	"time"
)

// reduceContent splices every decoded token span out of the input,
// highest offset first so earlier offsets stay valid, collapses marker
// escapes to their literal character and normalizes whitespace.
func reduceContent(rs []rune, tokens Tokens) string {
	spans := make([][2]int, 0, len(tokens))
	for _, tk := range tokens {
		spans = append(spans, [2]int{tk.Start, tk.End})
	}
	slices.SortFunc(spans, func(a, b [2]int) int {
		return b[0] - a[0]
	})
	out := slices.Clone(rs)
	for _, span := range spans {
		out = slices.Delete(out, span[0], span[1])
	}
	return collapseSpaces(string(collapseEscapes(out)))
}

func collapseEscapes(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		out = append(out, rs[i])
		if isMarker(rs[i]) && i+1 < len(rs) && rs[i+1] == rs[i] {
			i++
		}
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// aggregate folds tokens into Values. Tokens arrive in ascending source
// order, so plain overwrite gives every singleton kind last-token-wins
// semantics; tags keep source order and drop exact duplicates.
func aggregate(tokens Tokens) Values {
	var vals Values
	seen := make(map[string]bool)
	for _, tk := range tokens {
		switch tk.Kind {
		case KindValue:
			vals.Value = tk.Value.(*float64)
		case KindEffort:
			vals.Effort = tk.Value.(*float64)
		case KindDueDate:
			vals.DueDate = tk.Value.(*time.Time)
		case KindAssignee:
			vals.Assignee = tk.Value.(*string)
		case KindCompany:
			vals.Company = tk.Value.(*string)
		case KindTag:
			tag := *tk.Value.(*string)
			if !seen[tag] {
				seen[tag] = true
				vals.Tags = append(vals.Tags, tag)
			}
		}
	}
	return vals
}
