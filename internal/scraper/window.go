package scraper

import "time"

// withinSevenDayWindow reports whether eventDate passes the rolling
// seven-day acceptance walk measured from now.
//
// The walk advances a simulated day-of-month through eight iterations,
// rolling into the next month when the real month length is exceeded, and
// evaluates exactly once, on the seventh advanced day: the event is accepted
// when its day-of-month minus one is at most the advanced day AND its month
// equals the advanced month. The boundary arithmetic is intentionally kept
// as-is rather than replaced with a plain date comparison; its month-edge
// behavior diverges from a naive "within the next 7 days" reading and the
// tests pin both an accepted and a rejected case to keep that visible.
func withinSevenDayWindow(now, eventDate time.Time) bool {
	dayInMonth := now.Day()
	month := int(now.Month())
	monthLen := daysInMonth(int(now.Month()), now.Year())

	eventDay := eventDate.Day() - 1
	accepted := false

	y := 0
	for x := 0; x < 8; x++ {
		if dayInMonth < monthLen {
			dayInMonth++
			y++
		} else {
			dayInMonth = 1
			y++
			month++
		}

		if y == 7 {
			accepted = eventDay <= dayInMonth && int(eventDate.Month()) == month
		}
	}

	return accepted
}

// daysInMonth returns the number of days in the given 1-based month.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
