package token

import (
	"regexp"
	"strings"
	"unicode"
)

// marker characters that may introduce a token
const markers = "@$~>&#"

func isMarker(r rune) bool {
	return strings.ContainsRune(markers, r)
}

// payload runes: anything a value, effort, date, name or tag payload may
// contain; whitespace and further markers terminate the run
func isPayloadRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		strings.ContainsRune("._-:/+$", r)
}

// a marker glued to the tail of a word is email-ish, not a token
func isEmailLocalRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		strings.ContainsRune("._%+-", r)
}

var emailDomainRe = regexp.MustCompile(`^[A-Za-z0-9-]+\.[A-Za-z]{2,}$`)

// nextMatch finds the first raw match at or after 'from' and returns it
// together with the scan position to resume from. The scanner is
// stateless: rescanning the same runes from the same position yields the
// same match.
//
// Rules:
//   - a doubled marker ("@@") is an escape for the literal character and
//     never starts a match
//   - a marker immediately preceded by a word/email character is skipped
//   - the payload is the longest run of payload runes after the marker,
//     minus trailing sentence punctuation; empty payloads don't match
//   - an '@' whose payload looks like a mail domain ("example.com") is
//     skipped entirely
func nextMatch(rs []rune, from int) (Match, int, bool) {
	n := len(rs)
	for i := max(from, 0); i < n; i++ {
		r := rs[i]
		if !isMarker(r) {
			continue
		}
		if i+1 < n && rs[i+1] == r {
			i++
			continue
		}
		if i > 0 && isEmailLocalRune(rs[i-1]) {
			continue
		}
		j := i + 1
		for j < n && isPayloadRune(rs[j]) {
			j++
		}
		for j > i+1 && strings.ContainsRune(".,;:", rs[j-1]) {
			j--
		}
		if j == i+1 {
			continue
		}
		payload := string(rs[i+1 : j])
		if r == '@' && emailDomainRe.MatchString(payload) {
			i = j - 1
			continue
		}
		return Match{
			FullText: string(rs[i:j]),
			Marker:   r,
			Payload:  payload,
			Start:    i,
			End:      j,
		}, j, true
	}
	return Match{}, n, false
}

// scan collects every raw match left to right, non-overlapping
func scan(rs []rune) []Match {
	var out []Match
	for i := 0; i < len(rs); {
		m, next, ok := nextMatch(rs, i)
		if !ok {
			break
		}
		out = append(out, m)
		i = next
	}
	return out
}
