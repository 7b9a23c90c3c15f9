package token

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// truncation via decimal keeps "1.5" from becoming "1.5000000000000002";
// fpoints of -1 keeps the full precision
func fmtFloat(fpoints int, val float64) string {
	valD := decimal.NewFromFloat(val)
	if fpoints != -1 {
		valD = valD.Truncate(int32(fpoints))
	}
	return valD.String()
}

// FormatValue renders a monetary amount with a B/M/K suffix at the
// 1e9/1e6/1e3 breakpoints, one decimal place, '$' prefix.
func FormatValue(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return "$" + fmtFloat(1, n/1e9) + "B"
	case abs >= 1e6:
		return "$" + fmtFloat(1, n/1e6) + "M"
	case abs >= 1e3:
		return "$" + fmtFloat(1, n/1e3) + "K"
	}
	return "$" + fmtFloat(1, n)
}

// FormatEffort renders hours using the decoding unit table, largest
// unit first: 40h weeks, 8h days, hours, minutes below one hour.
func FormatEffort(hours float64) string {
	if hours < 0 {
		return "-" + FormatEffort(-hours)
	}
	switch {
	case hours >= hoursPerWeek:
		return fmtFloat(1, hours/hoursPerWeek) + "w"
	case hours >= hoursPerDay:
		return fmtFloat(1, hours/hoursPerDay) + "d"
	case hours >= 1:
		return fmtFloat(1, hours) + "h"
	}
	return fmtFloat(0, hours*60) + "m"
}

// FormatDueDate renders a due date relative to the reference date:
// "today", "tmr", a short weekday name within the coming week, ISO
// beyond that. Nil input renders "no date", a zero time "invalid date".
func FormatDueDate(dt *time.Time, ref time.Time) string {
	if dt == nil {
		return "no date"
	}
	if dt.IsZero() {
		return "invalid date"
	}
	days := int(math.Round(midnight(*dt).Sub(midnight(ref)).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tmr"
	case days > 1 && days < 7:
		return dt.Format("Mon")
	}
	return dt.Format("2006-01-02")
}
