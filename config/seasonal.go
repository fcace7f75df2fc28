package config

import "time"

// seasonalKeywords maps each month to the query terms that surface the
// right front-office coverage for that point in the NFL calendar.
var seasonalKeywords = map[time.Month]string{
	time.January:   "Playoffs OR Super Bowl",
	time.February:  "Free Agency OR Combine",
	time.March:     "Free Agency OR Signing",
	time.April:     "Mock Draft OR NFL Draft",
	time.May:       "NFL Draft OR Undrafted",
	time.June:      "OTAs OR Offseason",
	time.July:      "Training Camp OR Roster",
	time.August:    "Preseason OR Depth Chart",
	time.September: "Week 1 OR Season Opener",
	time.October:   "Standings OR Injury Report",
	time.November:  "Playoff Race OR Trade Deadline",
	time.December:  "Playoff Push OR Wild Card",
}

// SeasonalKeyword returns the seasonal search terms for the given month.
func SeasonalKeyword(month time.Month) string {
	if kw, ok := seasonalKeywords[month]; ok {
		return kw
	}
	return "NFL Season"
}
