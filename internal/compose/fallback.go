package compose

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bleacherbot/bleacherbot/models"
)

// Fallback deterministically produces a valid Synthesis from the raw
// records, without model assistance. It never fails, which is what makes
// the pipeline total: given identical input it returns identical output,
// and empty input yields a neutral synthesis rather than an error.
func Fallback(team string, records map[models.Category][]models.SourceRecord, maxItems, maxKeywords int) models.Synthesis {
	news := records[models.CategoryNews]
	community := records[models.CategoryCommunity]
	seasonal := records[models.CategorySeasonal]

	summary := fmt.Sprintf(
		"The automated summary is unavailable this week. Collected %d news headlines, %d community posts, and %d seasonal stories about the %s; the raw headlines are listed below.",
		len(news), len(community), len(seasonal), team,
	)

	return models.Synthesis{
		SeasonNote:         "Weekly Report",
		ExecutiveSummary:   summary,
		SentimentScore:     0,
		SentimentLabel:     "Unavailable",
		SentimentTrend:     "Stable",
		SentimentBreakdown: models.SentimentBreakdown{Positive: 33, Neutral: 34, Negative: 33},
		Keywords:           capitalizedKeywords(records, maxKeywords),
		WarRoomIntro:       "Automated front-office analysis was unavailable this week; the latest seasonal headlines are listed as-is.",
		WarRoomItems:       fallbackWarRoom(seasonal, news, maxItems),
	}
}

// fallbackWarRoom lifts the first usable seasonal records, then news
// records, verbatim into war-room items.
func fallbackWarRoom(seasonal, news []models.SourceRecord, maxItems int) []models.WarRoomItem {
	items := make([]models.WarRoomItem, 0, maxItems)
	for _, r := range append(append([]models.SourceRecord{}, seasonal...), news...) {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		item := models.WarRoomItem{
			Headline: r.Title,
			Analysis: "See the linked coverage for details.",
		}
		if r.Link != "" {
			item.RelatedLinks = []string{r.Link}
		}
		items = append(items, item)
		if len(items) == maxItems {
			break
		}
	}
	return items
}

// capitalizedKeywords extracts the most frequent capitalized tokens from
// record titles, a crude stand-in for the model's topic extraction.
// Ties are broken by first-seen order, so the result is deterministic.
func capitalizedKeywords(records map[models.Category][]models.SourceRecord, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, cat := range models.Categories {
		for _, r := range records[cat] {
			for _, token := range strings.Fields(r.Title) {
				token = strings.TrimFunc(token, func(r rune) bool {
					return !unicode.IsLetter(r) && !unicode.IsNumber(r)
				})
				runes := []rune(token)
				if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
					continue
				}
				if _, seen := counts[token]; !seen {
					firstSeen[token] = order
					order++
				}
				counts[token]++
			}
		}
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})
	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
