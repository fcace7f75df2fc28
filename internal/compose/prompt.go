package compose

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bleacherbot/bleacherbot/models"
)

// PromptSpec is the assembled prompt for one run: static role
// instructions (including the output schema description) plus the
// surviving records grouped by category.
type PromptSpec struct {
	System string
	User   string
	// Included counts the records that survived filtering, per category.
	Included map[models.Category]int
}

// analysisPrompt is the role text handed to the model. It embeds the
// exact JSON schema the response validator expects, so a well-behaved
// model emits a payload that decodes without coercion.
const analysisPrompt = `You are an NFL analyst producing the data payload for a weekly %s fan intelligence report.

You will be given:
  1. GENERAL NEWS   - recent headlines about the team
  2. COMMUNITY DATA - hot posts from the team subreddit
  3. SEASONAL NEWS  - roster, draft, and front-office headlines

Your job is to analyze this data and return a single JSON object with the following fields.
Return ONLY the JSON object - no markdown fences, no explanation, no extra text.

{
  "season_note": "<string: one short phrase describing the current NFL calendar moment, e.g. 'NFL Scouting Combine Week'. Base it on the news data.>",

  "executive_summary": "<string: 2-3 sentence paragraph. The single most important thing happening with this team right now, written in a direct journalistic tone. Base it only on the provided data. No hype.>",

  "sentiment_score": <number between -1.0 and 1.0: your overall read of fan mood based on the community data. -1.0 is extremely negative or angry, -0.5 is frustrated, 0 is perfectly neutral, 0.5 is optimistic, 1.0 is euphoric. Most weeks will NOT be exactly 0 - pick the number that best reflects the dominant tone of the posts.>,
  "sentiment_label": "<string: 2-3 word label matching the score, e.g. 'Highly Optimistic', 'Cautiously Pessimistic', 'Frustrated but Hopeful'>",
  "sentiment_trend": "<string: brief trend note based on post tone, e.g. 'Warming up vs last week' - if you cannot determine a trend from the data, write 'Stable'>",
  "sentiment_breakdown": {
    "positive": <integer: estimated %% of posts that are positive, must sum to 100 with neutral+negative>,
    "neutral":  <integer>,
    "negative": <integer>
  },
  "sentiment_keywords": ["<keyword>", "<keyword>", "<keyword>", "<keyword>"],

  "war_room_intro": "<string: one sentence framing the team's main front-office priority this week, based only on the seasonal news data.>",
  "war_room_items": [
    {"headline": "<short label>", "analysis": "<one sentence drawn from the data>", "related_links": ["<url of the supporting headline, when available>"]}
  ]
}

Rules:
- Base every field ONLY on the data provided below. Do not invent players, transactions, or events.
- war_room_items: include 2-4 items depending on how much the data supports. Do not pad.
- sentiment_keywords: extract actual topics being discussed (player names, events, themes).
- The JSON must be valid and parseable. Use double quotes for all strings.
- Do not include any text before or after the JSON object.`

var categorySections = map[models.Category]string{
	models.CategoryNews:      "GENERAL NEWS",
	models.CategoryCommunity: "COMMUNITY DATA",
	models.CategorySeasonal:  "SEASONAL / FRONT-OFFICE NEWS",
}

// BuildPrompt assembles the prompt for one run. Pure: the output depends
// only on its inputs. Each category is truncated to perCategory records,
// most relevant first (score, then recency), and records without a title
// are dropped. Zero records still yields a well-formed prompt.
func BuildPrompt(team string, records map[models.Category][]models.SourceRecord, perCategory int, now time.Time) PromptSpec {
	spec := PromptSpec{
		System:   fmt.Sprintf(analysisPrompt, team),
		Included: make(map[models.Category]int, len(models.Categories)),
	}

	var sb strings.Builder
	for _, cat := range models.Categories {
		selected := selectRecords(records[cat], perCategory)
		spec.Included[cat] = len(selected)

		fmt.Fprintf(&sb, "--- %s ---\n", categorySections[cat])
		if len(selected) == 0 {
			sb.WriteString("No data available this week.\n\n")
			continue
		}
		for _, r := range selected {
			writeRecord(&sb, r, now)
		}
		sb.WriteString("\n")
	}
	spec.User = strings.TrimRight(sb.String(), "\n") + "\n"
	return spec
}

// selectRecords drops empty-title records, orders the rest most relevant
// first and truncates to the cap. Ordering is stable so that ties keep
// the collector's order.
func selectRecords(records []models.SourceRecord, limit int) []models.SourceRecord {
	selected := make([]models.SourceRecord, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		selected = append(selected, r)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Score != selected[j].Score {
			return selected[i].Score > selected[j].Score
		}
		return selected[i].PublishedAt.After(selected[j].PublishedAt)
	})
	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}

func writeRecord(sb *strings.Builder, r models.SourceRecord, now time.Time) {
	switch r.Category {
	case models.CategoryCommunity:
		fmt.Fprintf(sb, "### %s (%s)\n", r.Title, models.RelativeAge(r.PublishedAt, now))
		if r.Summary != "" {
			fmt.Fprintf(sb, "  %s\n", r.Summary)
		}
		if r.Score > 0 {
			fmt.Fprintf(sb, "  Author: %s (%d upvotes)\n", r.Source, r.Score)
		} else {
			fmt.Fprintf(sb, "  Author: %s\n", r.Source)
		}
	default:
		fmt.Fprintf(sb, "- [%s] %s (%s)\n", r.Source, r.Title, models.RelativeAge(r.PublishedAt, now))
		if r.Summary != "" {
			fmt.Fprintf(sb, "  %s\n", r.Summary)
		}
	}
}
