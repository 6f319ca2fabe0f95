// Package datefmt parses the audit source's custom timestamp format and
// renders instants for display.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

const (
	// parseLayout matches day/month/year with a millisecond fraction and an
	// hour-only numeric offset, e.g. "5/03/2024 14:22:10.123+02".
	parseLayout = "2/01/2006 15:04:05.999-07"

	// displayLayout is the 24-hour human rendering used by the views.
	displayLayout = "Mon, Jan 2, 2006, 15:04:05 MST"
)

// Parse decodes a source timestamp of the form
// "d/MM/yyyy HH:mm:ss.<fraction>±hh". The fractional-seconds segment has a
// source-dependent width, so it is truncated to millisecond precision before
// parsing. Both the decimal point and the offset sign are located by scanning
// from the end of the string; a missing marker is a parse error.
func Parse(s string) (time.Time, error) {
	dot := strings.LastIndex(s, ".")
	if dot == -1 {
		return time.Time{}, fmt.Errorf("timestamp %q: missing fractional seconds", s)
	}

	sign := strings.LastIndex(s, "+")
	if i := strings.LastIndex(s, "-"); i > sign {
		sign = i
	}
	if sign < dot {
		return time.Time{}, fmt.Errorf("timestamp %q: missing UTC offset", s)
	}

	frac := s[dot+1 : sign]
	if len(frac) > 3 {
		frac = frac[:3]
	}

	t, err := time.Parse(parseLayout, s[:dot+1]+frac+s[sign:])
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return t, nil
}

// Format renders an instant for display: weekday, date, time to the second,
// zone, 24-hour clock.
func Format(t time.Time) string {
	return t.Format(displayLayout)
}
