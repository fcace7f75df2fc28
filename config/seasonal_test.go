package config

import (
	"testing"
	"time"
)

func TestSeasonalKeyword_AllMonthsCovered(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		if SeasonalKeyword(month) == "" {
			t.Fatalf("expected keyword for %s", month)
		}
	}
}

func TestSeasonalKeyword_CalendarAlignment(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.February, "Free Agency OR Combine"},
		{time.April, "Mock Draft OR NFL Draft"},
		{time.August, "Preseason OR Depth Chart"},
		{time.November, "Playoff Race OR Trade Deadline"},
	}
	for _, tc := range cases {
		if got := SeasonalKeyword(tc.month); got != tc.want {
			t.Fatalf("expected %q for %s, got %q", tc.want, tc.month, got)
		}
	}
}
