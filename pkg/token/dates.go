package token

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The date vocabulary is kept as plain lookup data so further locales
// slot in without touching the resolution algorithm. Keys are stored
// lowercase with internal whitespace removed; Vietnamese entries carry
// a diacritic-free spelling next to the composed one.

// fixed day offsets from the reference date
var dateShortcuts = map[string]int{
	"today": 0, "td": 0, "hômnay": 0, "homnay": 0,
	"tomorrow": 1, "tmr": 1, "ngàymai": 1, "ngaymai": 1, "mai": 1,
	"yesterday": -1, "yst": -1, "hômqua": -1, "homqua": -1,
	"nextweek": 7,
}

// weekday anchors resolved at-or-after the reference date
var weekAnchors = map[string]time.Weekday{
	"thisweek": time.Friday, "eow": time.Friday,
	"weekend": time.Saturday, "cuốituần": time.Saturday, "cuoituan": time.Saturday,
	"đầutuần": time.Monday, "dautuan": time.Monday,
}

// named weekdays resolved strictly after the reference date
var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday, "thứ2": time.Monday, "thu2": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "thứ3": time.Tuesday, "thu3": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "thứ4": time.Wednesday, "thu4": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thứ5": time.Thursday, "thu5": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "thứ6": time.Friday, "thu6": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "thứ7": time.Saturday, "thu7": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday, "chủnhật": time.Sunday, "chunhat": time.Sunday, "cn": time.Sunday,
}

var (
	plusDaysRe  = regexp.MustCompile(`^\+(\d{1,4})$`)
	bareDaysRe  = regexp.MustCompile(`^(\d{1,4})d$`)
	inPhraseRe  = regexp.MustCompile(`^in(\d{1,3})(days?|weeks?|months?)$`)
	sauPhraseRe = regexp.MustCompile(`^sau(\d{1,3})(ngày|ngay|tuần|tuan|tháng|thang)$`)
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizeDateKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// parseDueDate decodes one date expression against the reference date.
// Unrecognized or invalid expressions report !ok, never an error.
func parseDueDate(payload string, ref time.Time) (time.Time, bool) {
	ref = midnight(ref)
	key := normalizeDateKey(payload)
	if key == "" {
		return time.Time{}, false
	}
	if off, ok := dateShortcuts[key]; ok {
		return ref.AddDate(0, 0, off), true
	}
	if wd, ok := weekAnchors[key]; ok {
		return nextWeekday(ref, wd, true), true
	}
	if wd, ok := weekdayNames[key]; ok {
		return nextWeekday(ref, wd, false), true
	}
	if sub := plusDaysRe.FindStringSubmatch(key); sub != nil {
		n, _ := strconv.Atoi(sub[1])
		return ref.AddDate(0, 0, n), true
	}
	if sub := bareDaysRe.FindStringSubmatch(key); sub != nil {
		n, _ := strconv.Atoi(sub[1])
		return ref.AddDate(0, 0, n), true
	}
	if sub := inPhraseRe.FindStringSubmatch(key); sub != nil {
		n, _ := strconv.Atoi(sub[1])
		switch sub[2][0] {
		case 'd':
			return ref.AddDate(0, 0, n), true
		case 'w':
			return ref.AddDate(0, 0, n*7), true
		case 'm':
			return ref.AddDate(0, n, 0), true
		}
	}
	if sub := sauPhraseRe.FindStringSubmatch(key); sub != nil {
		n, _ := strconv.Atoi(sub[1])
		switch {
		case strings.HasPrefix(sub[2], "ng"):
			return ref.AddDate(0, 0, n), true
		case strings.HasPrefix(sub[2], "tu"):
			return ref.AddDate(0, 0, n*7), true
		default: // tháng
			return ref.AddDate(0, n, 0), true
		}
	}
	return parseAbsoluteDate(key, ref)
}

// nextWeekday resolves a weekday relative to ref; when today already is
// that weekday, atOrAfter keeps today and strict naming jumps a week
func nextWeekday(ref time.Time, wd time.Weekday, atOrAfter bool) time.Time {
	d := (int(wd) - int(ref.Weekday()) + 7) % 7
	if d == 0 && !atOrAfter {
		d = 7
	}
	return ref.AddDate(0, 0, d)
}

// ISO YYYY-MM-DD, or day-first DD/MM, DD-MM, DD.MM with an optional
// 2- or 4-digit year; 2-digit years mean 2000+YY, omitted years mean
// the reference year. Impossible day/month combinations don't match.
func parseAbsoluteDate(s string, ref time.Time) (time.Time, bool) {
	if isoDateRe.MatchString(s) {
		parts := strings.Split(s, "-")
		year, _ := strconv.Atoi(parts[0])
		mon, _ := strconv.Atoi(parts[1])
		day, _ := strconv.Atoi(parts[2])
		return calendarDate(year, mon, day, ref.Location())
	}
	for _, sep := range []string{"/", "-", "."} {
		if !strings.Contains(s, sep) {
			continue
		}
		parts := strings.Split(s, sep)
		if len(parts) != 2 && len(parts) != 3 {
			return time.Time{}, false
		}
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return time.Time{}, false
		}
		mon, err := strconv.Atoi(parts[1])
		if err != nil {
			return time.Time{}, false
		}
		year := ref.Year()
		if len(parts) == 3 {
			year, err = strconv.Atoi(parts[2])
			if err != nil {
				return time.Time{}, false
			}
			if year < 100 {
				year += 2000
			}
		}
		return calendarDate(year, mon, day, ref.Location())
	}
	return time.Time{}, false
}

// reject out-of-range fields that time.Date would silently normalize,
// e.g. 31/02 rolling over into March
func calendarDate(year, mon, day int, loc *time.Location) (time.Time, bool) {
	if year < 1 || mon < 1 || mon > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(mon), day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(mon) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
