package scraper

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWithinSevenDayWindow(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		event time.Time
		want  bool
	}{
		{
			name:  "mid month inside window",
			now:   date(2026, time.April, 10),
			event: date(2026, time.April, 15),
			want:  true,
		},
		{
			name:  "mid month beyond window",
			now:   date(2026, time.April, 10),
			event: date(2026, time.April, 20),
			want:  false,
		},
		{
			name:  "rollover into next month accepted",
			now:   date(2026, time.April, 25),
			event: date(2026, time.May, 2),
			want:  true,
		},
		{
			name:  "ten days out across rollover rejected",
			now:   date(2026, time.April, 25),
			event: date(2026, time.May, 5),
			want:  false,
		},
		{
			name:  "wrong month rejected",
			now:   date(2026, time.April, 10),
			event: date(2026, time.June, 12),
			want:  false,
		},
		{
			// The walk compares day-of-month with <=, so an earlier day in
			// the evaluated month also passes. Pinned so the divergence from
			// a plain date-range check stays visible.
			name:  "earlier day in same month accepted",
			now:   date(2026, time.April, 10),
			event: date(2026, time.April, 5),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinSevenDayWindow(tt.now, tt.event)
			if got != tt.want {
				t.Errorf("withinSevenDayWindow(%s, %s) = %v, want %v",
					tt.now.Format("2006-01-02"), tt.event.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{1, 2026, 31},
		{2, 2026, 28},
		{2, 2024, 29},
		{4, 2026, 30},
		{12, 2026, 31},
	}

	for _, tt := range tests {
		if got := daysInMonth(tt.month, tt.year); got != tt.want {
			t.Errorf("daysInMonth(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}
