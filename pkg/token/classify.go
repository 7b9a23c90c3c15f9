package token

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"quickcap/pkg/utils"
)

// effort unit table, canonical across decoding and formatting:
// minutes, hours, 8h workdays, 40h workweeks. No month unit.
const (
	hoursPerDay  = 8
	hoursPerWeek = 40
)

var effortUnits = map[string]float64{
	"m": 1.0 / 60,
	"h": 1,
	"d": hoursPerDay,
	"w": hoursPerWeek,
}

// strictly-typed markers; '@' is the smart marker and classifies
// through the precedence cascade instead
var markerKinds = map[rune]Kind{
	'$': KindValue,
	'~': KindEffort,
	'>': KindDueDate,
	'&': KindCompany,
	'#': KindTag,
}

// explicit 'key:value' payload keywords, forcing the kind on any marker
var explicitKeys = map[string]Kind{
	"value": KindValue, "v": KindValue,
	"effort": KindEffort, "e": KindEffort,
	"due": KindDueDate, "d": KindDueDate,
	"company": KindCompany, "c": KindCompany,
	"assignee": KindAssignee, "a": KindAssignee,
	"tag": KindTag, "t": KindTag,
}

// precedence for smart '@' payloads; first decoder to accept wins.
// KindTag accepts anything, so the cascade never falls through.
var smartOrder = []Kind{
	KindCompany,
	KindValue,
	KindEffort,
	KindDueDate,
	KindAssignee,
	KindTag,
}

type parser struct {
	ref       time.Time
	cfg       Config
	companies map[string]bool
}

func newParser(ref time.Time, cfg Config) *parser {
	companies := make(map[string]bool, len(cfg.Companies))
	for _, code := range cfg.Companies {
		companies[strings.ToUpper(code)] = true
	}
	return &parser{ref: midnight(ref), cfg: cfg, companies: companies}
}

// classify assigns a Kind to a raw match and decodes its payload.
// A nil return means the substring produced no token and stays in the
// text; malformed payloads are never an error.
func (p *parser) classify(m Match) *Token {
	if key, rest, found := strings.Cut(m.Payload, ":"); found {
		kind, ok := explicitKeys[strings.ToLower(key)]
		if !ok || rest == "" {
			return nil
		}
		val, ok := p.decode(kind, rest)
		if !ok {
			return nil
		}
		return &Token{Kind: kind, Value: val, Match: m}
	}
	if m.Marker == '@' {
		for _, kind := range smartOrder {
			if val, ok := p.decode(kind, m.Payload); ok {
				return &Token{Kind: kind, Value: val, Match: m}
			}
		}
		return nil
	}
	kind := markerKinds[m.Marker]
	val, ok := p.decode(kind, m.Payload)
	if !ok {
		return nil
	}
	return &Token{Kind: kind, Value: val, Match: m}
}

func (p *parser) decode(kind Kind, payload string) (any, bool) {
	switch kind {
	case KindValue:
		return p.decodeValue(payload)
	case KindEffort:
		return p.decodeEffort(payload)
	case KindDueDate:
		return p.decodeDueDate(payload)
	case KindAssignee:
		return p.decodeAssignee(payload)
	case KindCompany:
		return p.decodeCompany(payload)
	case KindTag:
		return p.decodeTag(payload)
	}
	return nil, false
}

var valueRe = regexp.MustCompile(`^\$?(\d+(?:\.\d+)?)([kKmMbB])?$`)

// monetary amount: optional leading '$', optional K/M/B scale suffix
func (p *parser) decodeValue(payload string) (any, bool) {
	sub := valueRe.FindStringSubmatch(payload)
	if sub == nil {
		return nil, false
	}
	n, err := strconv.ParseFloat(sub[1], 64)
	if err != nil {
		return nil, false
	}
	switch strings.ToUpper(sub[2]) {
	case "K":
		n *= 1e3
	case "M":
		n *= 1e6
	case "B":
		n *= 1e9
	}
	if err := validateValueLimit(n, p.cfg.MaxValue); err != nil {
		return nil, false
	}
	return utils.MkPtr(n), true
}

var effortRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([mhdwMHDW])$`)

// time estimate normalized to hours
func (p *parser) decodeEffort(payload string) (any, bool) {
	sub := effortRe.FindStringSubmatch(payload)
	if sub == nil {
		return nil, false
	}
	n, err := strconv.ParseFloat(sub[1], 64)
	if err != nil {
		return nil, false
	}
	n *= effortUnits[strings.ToLower(sub[2])]
	if err := validateEffortLimit(n, p.cfg.MaxEffort); err != nil {
		return nil, false
	}
	return utils.MkPtr(n), true
}

func (p *parser) decodeDueDate(payload string) (any, bool) {
	dt, ok := parseDueDate(payload, p.ref)
	if !ok {
		return nil, false
	}
	return utils.MkPtr(dt), true
}

// a bare word of letters only; case preserved
func (p *parser) decodeAssignee(payload string) (any, bool) {
	for _, r := range payload {
		if !unicode.IsLetter(r) {
			return nil, false
		}
	}
	return utils.MkPtr(payload), true
}

// uppercased payload must be in the configured allow-list
func (p *parser) decodeCompany(payload string) (any, bool) {
	code := strings.ToUpper(payload)
	if !p.companies[code] {
		return nil, false
	}
	return utils.MkPtr(code), true
}

func (p *parser) decodeTag(payload string) (any, bool) {
	return utils.MkPtr(payload), true
}
