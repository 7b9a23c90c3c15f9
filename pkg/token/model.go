package token

import (
	"fmt"
	"time"
)

type Kind int

const (
	KindValue Kind = iota
	KindEffort
	KindDueDate
	KindAssignee
	KindCompany
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindEffort:
		return "effort"
	case KindDueDate:
		return "due"
	case KindAssignee:
		return "assignee"
	case KindCompany:
		return "company"
	case KindTag:
		return "tag"
	}
	return "unknown"
}

// Match is a raw scanner hit: the exact substring including its marker,
// the payload after the marker and the half-open rune range of the
// substring in the NFC-normalized input.
type Match struct {
	FullText string
	Marker   rune
	Payload  string
	Start    int
	End      int
}

// Token is a classified, decoded Match. Value holds *float64 for
// KindValue/KindEffort, *time.Time for KindDueDate and *string for the
// rest; Kind alone determines which.
type Token struct {
	Kind  Kind
	Value any
	Match
}

type Tokens []*Token

type TkCond func(*Token) bool
type TkFunc func(*Token)

func TkByKind(kind Kind) TkCond {
	return func(tk *Token) bool {
		return tk.Kind == kind
	}
}

func (tks Tokens) ForEach(fn TkFunc) {
	for _, tk := range tks {
		fn(tk)
	}
}

func (tks Tokens) Find(cond TkCond) (*Token, int) {
	for ndx, tk := range tks {
		if cond(tk) {
			return tk, ndx
		}
	}
	return nil, -1
}

func (tks Tokens) Filter(cond TkCond) Tokens {
	var out Tokens
	for _, tk := range tks {
		if cond(tk) {
			out = append(out, tk)
		}
	}
	return out
}

// canonical re-rendering of the decoded token, not the raw source text
func (tk *Token) String() string {
	switch tk.Kind {
	case KindValue:
		return "$" + fmtFloat(-1, *tk.Value.(*float64))
	case KindEffort:
		return "~" + FormatEffort(*tk.Value.(*float64))
	case KindDueDate:
		return ">" + tk.Value.(*time.Time).Format("2006-01-02")
	case KindAssignee:
		return "@" + *tk.Value.(*string)
	case KindCompany:
		return "&" + *tk.Value.(*string)
	case KindTag:
		return "#" + *tk.Value.(*string)
	}
	return tk.FullText
}

// Values is the per-field aggregation of a parse: singleton kinds keep
// the rightmost token of that kind, tags accumulate in source order
// with exact duplicates removed.
type Values struct {
	Value    *float64   `json:"value,omitempty"`
	Effort   *float64   `json:"effort,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Assignee *string    `json:"assignee,omitempty"`
	Company  *string    `json:"company,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
}

type Result struct {
	CleanContent string `json:"cleanContent"`
	Tokens       Tokens `json:"-"`
	Values       Values `json:"values"`
}

func DebugResult(res Result) {
	fmt.Printf("clean: %q\n", res.CleanContent)
	res.Tokens.ForEach(func(tk *Token) {
		fmt.Printf("%d:%d %s %s\n", tk.Start, tk.End, tk.Kind, tk.String())
	})
}
