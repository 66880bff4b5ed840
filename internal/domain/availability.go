package domain

import "time"

// SpotOpenAt reports whether the spot is open at the given instant.
//
// alwaysOpen overrides the opens/closes window entirely. A spot whose opens
// or closes is "n/a" counts as closed at every instant: the contract does
// not say whether n/a means "closed" or "hours unknown", and closed is the
// conservative reading. opens == closes is a zero-width window, never open.
//
// closes may legitimately exceed 24:00 ("26:00" closes at 02:00 the next
// day), so the instant's minute-of-day is tested both against its own day
// and, shifted by a full day, against a window that opened the day before.
func SpotOpenAt(s *Spot, at time.Time) bool {
	if s.AlwaysOpen {
		return true
	}
	if s.Opens.NotApplicable || s.Closes.NotApplicable {
		return false
	}
	opens, closes := s.Opens.Minutes, s.Closes.Minutes
	if opens == closes {
		return false
	}
	t := at.Hour()*60 + at.Minute()
	if opens <= t && t < closes {
		return true
	}
	t += MinutesPerDay
	return opens <= t && t < closes
}
