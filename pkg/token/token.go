// Package token extracts structured task metadata (monetary value,
// effort estimate, due date, assignee, company, tags) from inline
// markers in free-form task text, e.g.
//
//	Build landing page $10M ~4h @john #website >tomorrow
//
// The pipeline is a pure function over the input string: no I/O, no
// shared state, no ambient clock. The reference date and the company
// allow-list are injected per call, so concurrent use needs no
// coordination.
package token

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Config carries the injectable parse settings the surrounding app
// keeps in user-editable configuration.
type Config struct {
	// Companies is the allow-list of company codes, matched
	// case-insensitively against payloads.
	Companies []string
	// MaxValue and MaxEffort reject absurd amounts at decode time;
	// zero disables the guard.
	MaxValue  float64
	MaxEffort float64
}

func DefaultConfig() Config {
	return Config{
		Companies: []string{"AIC", "WN", "BXV", "EA", "PERSONAL"},
		MaxValue:  1e12,
		MaxEffort: 10000,
	}
}

// Parse runs the full pipeline: scan raw matches, classify and decode
// each one, then reduce the text and aggregate the decoded fields.
// Malformed tokens never produce errors; they simply stay in the text.
//
// The input is NFC-normalized first so decomposed Vietnamese diacritics
// compose predictably; all token offsets are rune offsets into that
// normalized form.
func Parse(input string, ref time.Time, cfg Config) Result {
	if validateEmptyText(input) != nil {
		return Result{}
	}
	input = norm.NFC.String(input)
	rs := []rune(input)
	p := newParser(ref, cfg)
	var tokens Tokens
	for i := 0; i < len(rs); {
		m, next, ok := nextMatch(rs, i)
		if !ok {
			break
		}
		if tk := p.classify(m); tk != nil {
			tokens = append(tokens, tk)
		}
		i = next
	}
	return Result{
		CleanContent: reduceContent(rs, tokens),
		Tokens:       tokens,
		Values:       aggregate(tokens),
	}
}
