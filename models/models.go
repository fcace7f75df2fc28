package models

import "time"

// Category identifies which collector produced a SourceRecord.
type Category string

const (
	CategoryNews      Category = "news"
	CategoryCommunity Category = "community"
	CategorySeasonal  Category = "seasonal"
)

// Categories lists every category in the order they appear in prompts
// and in the rendered report.
var Categories = []Category{CategoryNews, CategoryCommunity, CategorySeasonal}

// SourceRecord is one normalized scraped item (headline or community post).
// Records are built once by a collector and never mutated afterwards.
type SourceRecord struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"` // outlet name or community author
	Summary     string    `json:"summary,omitempty"`
	Score       int       `json:"score,omitempty"` // community voting signal, 0 when unknown
	PublishedAt time.Time `json:"published_at,omitzero"`
	Category    Category  `json:"category"`
}

// SentimentBreakdown is the estimated share of community posts per tone.
// The three components always sum to 100.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// WarRoomItem is one front-office storyline in the synthesis.
type WarRoomItem struct {
	Headline     string   `json:"headline"`
	Analysis     string   `json:"analysis"`
	RelatedLinks []string `json:"related_links,omitempty"`
}

// Synthesis is the structured analytical content of a report. It is
// produced either by validating model output or by the deterministic
// fallback, and always satisfies the schema invariants: ExecutiveSummary
// non-empty, SentimentScore within [-1, 1], breakdown summing to 100,
// and bounded list lengths.
type Synthesis struct {
	SeasonNote         string             `json:"season_note"`
	ExecutiveSummary   string             `json:"executive_summary"`
	SentimentScore     float64            `json:"sentiment_score"`
	SentimentLabel     string             `json:"sentiment_label"`
	SentimentTrend     string             `json:"sentiment_trend"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
	Keywords           []string           `json:"sentiment_keywords"`
	WarRoomIntro       string             `json:"war_room_intro"`
	WarRoomItems       []WarRoomItem      `json:"war_room_items"`
}

// Report is the final object handed to the renderer: one validated
// synthesis merged with the raw records it was derived from. Exactly one
// Report exists per run; it is consumed once and not retained.
type Report struct {
	RunID         string                      `json:"run_id"`
	TeamName      string                      `json:"team_name"`
	GeneratedAt   time.Time                   `json:"generated_at"`
	Synthesis     Synthesis                   `json:"synthesis"`
	RawByCategory map[Category][]SourceRecord `json:"raw_by_category"`
	// Degraded is true when the synthesis came from the rule-based
	// fallback rather than the model.
	Degraded bool `json:"degraded"`
}
