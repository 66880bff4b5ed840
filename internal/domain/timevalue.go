package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is one full day-cycle in minutes.
const MinutesPerDay = 24 * 60

// ErrMalformedTime marks a string outside the opens/closes grammar.
var ErrMalformedTime = errors.New("malformed time")

// TimeValue is one parsed opens/closes boundary: a minute count since
// midnight of the opening day, or the "n/a" sentinel. Minute counts past
// 1440 are preserved as-is — a closing time of "26:00" means 02:00 the
// following day, and normalising it here would lose the day-wrap. That
// normalisation belongs to the availability check, which knows the query
// instant's day context.
type TimeValue struct {
	Minutes       int
	NotApplicable bool
}

func (t TimeValue) String() string {
	if t.NotApplicable {
		return "n/a"
	}
	return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
}

// timePattern is the document grammar for opens/closes: hours 00-29
// (times past 24:00 denote post-midnight hours), minutes 00-59.
var timePattern = regexp.MustCompile(`^([0-2][0-9]):([0-5][0-9])$`)

// ParseTimeValue parses the constrained time grammar: "HH:MM" with
// HH in [00,29] and MM in [00,59], or the literal "n/a" in any casing.
// Anything else is ErrMalformedTime.
func ParseTimeValue(raw string) (TimeValue, error) {
	if strings.EqualFold(raw, "n/a") {
		return TimeValue{NotApplicable: true}, nil
	}
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return TimeValue{}, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return TimeValue{Minutes: hh*60 + mm}, nil
}
