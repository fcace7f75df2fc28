package compose

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{
	"season_note": "NFL Scouting Combine Week",
	"executive_summary": "The team locked up its left tackle and fans are feeling it.",
	"sentiment_score": 0.4,
	"sentiment_label": "Cautiously Optimistic",
	"sentiment_trend": "Warming up vs last week",
	"sentiment_breakdown": {"positive": 45, "neutral": 35, "negative": 20},
	"sentiment_keywords": ["Tackle", "Combine", "Cap Space"],
	"war_room_intro": "The front office is focused on the offensive line.",
	"war_room_items": [
		{"headline": "Tackle extension", "analysis": "A five year deal got done.", "related_links": ["https://example.com/a"]},
		{"headline": "Combine visits", "analysis": "Three linemen got formal interviews."}
	]
}`

func TestParseSynthesis_ValidPayload(t *testing.T) {
	syn, err := ParseSynthesis(validPayload, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if syn.SentimentScore != 0.4 {
		t.Fatalf("expected score 0.4, got %v", syn.SentimentScore)
	}
	if syn.ExecutiveSummary == "" {
		t.Fatal("expected non-empty executive summary")
	}
	if len(syn.WarRoomItems) != 2 {
		t.Fatalf("expected 2 war room items, got %d", len(syn.WarRoomItems))
	}
	if got := syn.SentimentBreakdown.Positive + syn.SentimentBreakdown.Neutral + syn.SentimentBreakdown.Negative; got != 100 {
		t.Fatalf("expected breakdown to sum to 100, got %d", got)
	}
}

func TestParseSynthesis_MarkdownFences(t *testing.T) {
	raw := "```json\n" + validPayload + "\n```"
	syn, err := ParseSynthesis(raw, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if syn.SentimentScore != 0.4 {
		t.Fatalf("expected score 0.4, got %v", syn.SentimentScore)
	}
}

func TestParseSynthesis_SurroundingProse(t *testing.T) {
	raw := "Sure, here is the JSON you asked for:\n" + validPayload + "\nLet me know if you need anything else."
	if _, err := ParseSynthesis(raw, 5, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseSynthesis_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		stage string
		field string
	}{
		{"empty payload", "", "extract", ""},
		{"no json object", "the model refused to answer", "extract", ""},
		{"truncated json", `{"executive_summary": "ok", "sentiment_sc`, "extract", ""},
		{"score wrong type", `{"executive_summary": "ok", "sentiment_score": "high"}`, "decode", "sentiment_score"},
		{"non-list war room", `{"executive_summary": "ok", "sentiment_score": 0.1, "war_room_items": "none"}`, "decode", "war_room_items"},
		{"missing summary", `{"sentiment_score": 0.2}`, "validate", "executive_summary"},
		{"empty summary", `{"executive_summary": "  ", "sentiment_score": 0.2}`, "validate", "executive_summary"},
		{"missing score", `{"executive_summary": "ok"}`, "validate", "sentiment_score"},
		{"score above range", `{"executive_summary": "ok", "sentiment_score": 2.0}`, "validate", "sentiment_score"},
		{"score below range", `{"executive_summary": "ok", "sentiment_score": -1.5}`, "validate", "sentiment_score"},
		{"negative breakdown", `{"executive_summary": "ok", "sentiment_score": 0, "sentiment_breakdown": {"positive": -5, "neutral": 60, "negative": 45}}`, "validate", "sentiment_breakdown"},
		{"empty headline", `{"executive_summary": "ok", "sentiment_score": 0, "war_room_items": [{"headline": "", "analysis": "x"}]}`, "validate", "war_room_items[0].headline"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			syn, err := ParseSynthesis(tc.raw, 5, 6)
			if err == nil {
				t.Fatalf("expected error, got synthesis %+v", syn)
			}
			if syn != nil {
				t.Fatalf("expected nil synthesis on failure, got %+v", syn)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if vErr.Stage != tc.stage {
				t.Fatalf("expected stage %q, got %q (%v)", tc.stage, vErr.Stage, vErr)
			}
			if tc.field != "" && vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

func TestParseSynthesis_TruncatedJSONInsideBraces(t *testing.T) {
	// Braces are present but the object is not valid JSON.
	raw := `{"executive_summary": "ok", "sentiment_score": 0.1, "sentiment_keywords": ["a",}`
	_, err := ParseSynthesis(raw, 5, 6)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Stage != "decode" {
		t.Fatalf("expected decode-stage ValidationError, got %v", err)
	}
}

func TestParseSynthesis_BreakdownNormalized(t *testing.T) {
	raw := `{"executive_summary": "ok", "sentiment_score": 0.1, "sentiment_breakdown": {"positive": 40, "neutral": 40, "negative": 40}}`
	syn, err := ParseSynthesis(raw, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := syn.SentimentBreakdown
	if b.Positive+b.Neutral+b.Negative != 100 {
		t.Fatalf("expected normalized breakdown summing to 100, got %+v", b)
	}
}

func TestParseSynthesis_BreakdownRoundingStaysNonNegative(t *testing.T) {
	// 3/8 and 5/8 both round away from zero, which would leave the
	// remainder at -1 without correction.
	raw := `{"executive_summary": "ok", "sentiment_score": 0.1, "sentiment_breakdown": {"positive": 3, "neutral": 5, "negative": 0}}`
	syn, err := ParseSynthesis(raw, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := syn.SentimentBreakdown
	if b.Positive < 0 || b.Neutral < 0 || b.Negative < 0 {
		t.Fatalf("expected non-negative components, got %+v", b)
	}
	if b.Positive+b.Neutral+b.Negative != 100 {
		t.Fatalf("expected breakdown summing to 100, got %+v", b)
	}
}

func TestParseSynthesis_MissingBreakdownDefaults(t *testing.T) {
	raw := `{"executive_summary": "ok", "sentiment_score": 0.1}`
	syn, err := ParseSynthesis(raw, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if syn.SentimentBreakdown.Positive != 33 || syn.SentimentBreakdown.Neutral != 34 || syn.SentimentBreakdown.Negative != 33 {
		t.Fatalf("expected default breakdown, got %+v", syn.SentimentBreakdown)
	}
	if syn.SeasonNote != "Weekly Report" {
		t.Fatalf("expected default season note, got %q", syn.SeasonNote)
	}
	if syn.SentimentLabel != "Neutral" || syn.SentimentTrend != "Stable" {
		t.Fatalf("expected default label/trend, got %q/%q", syn.SentimentLabel, syn.SentimentTrend)
	}
}

func TestParseSynthesis_ListsTruncated(t *testing.T) {
	items := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, `{"headline": "h", "analysis": "a"}`)
	}
	raw := `{"executive_summary": "ok", "sentiment_score": 0,
		"sentiment_keywords": ["A","B","C","D","E","F","G","H"],
		"war_room_items": [` + strings.Join(items, ",") + `]}`

	syn, err := ParseSynthesis(raw, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(syn.WarRoomItems) != 5 {
		t.Fatalf("expected war room items truncated to 5, got %d", len(syn.WarRoomItems))
	}
	if len(syn.Keywords) != 6 {
		t.Fatalf("expected keywords truncated to 6, got %d", len(syn.Keywords))
	}
}

func TestParseSynthesis_BoundaryScoresAccepted(t *testing.T) {
	for _, score := range []string{"-1", "1", "0"} {
		raw := `{"executive_summary": "ok", "sentiment_score": ` + score + `}`
		if _, err := ParseSynthesis(raw, 5, 6); err != nil {
			t.Fatalf("expected score %s to be accepted, got %v", score, err)
		}
	}
}
