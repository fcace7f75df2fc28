package compose

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bleacherbot/bleacherbot/models"
)

// payload mirrors the JSON object the model is instructed to emit.
// Pointer fields distinguish a missing key from a zero value so that
// required fields can be rejected rather than silently defaulted.
type payload struct {
	SeasonNote         *string           `json:"season_note"`
	ExecutiveSummary   *string           `json:"executive_summary"`
	SentimentScore     *float64          `json:"sentiment_score"`
	SentimentLabel     *string           `json:"sentiment_label"`
	SentimentTrend     *string           `json:"sentiment_trend"`
	SentimentBreakdown *breakdownPayload `json:"sentiment_breakdown"`
	Keywords           []string          `json:"sentiment_keywords"`
	WarRoomIntro       *string           `json:"war_room_intro"`
	WarRoomItems       []itemPayload     `json:"war_room_items"`
}

type breakdownPayload struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type itemPayload struct {
	Headline     string   `json:"headline"`
	Analysis     string   `json:"analysis"`
	RelatedLinks []string `json:"related_links"`
}

// ExtractPayload locates the JSON object inside raw model output,
// stripping markdown fences and any surrounding prose the model added
// despite being told not to.
func ExtractPayload(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", &ValidationError{Stage: "extract", Reason: "no JSON object found in model output"}
	}
	return s[start : end+1], nil
}

// ParseSynthesis turns raw model output into a validated Synthesis.
// This is the trust boundary of the pipeline: on any parse or validation
// failure it returns a ValidationError and never a partially populated
// Synthesis. Out-of-range numbers and missing required text are
// rejected; over-long lists are truncated; a breakdown that does not sum
// to 100 is treated as a rounding artifact and normalized.
func ParseSynthesis(raw string, maxItems, maxKeywords int) (*models.Synthesis, error) {
	body, err := ExtractPayload(raw)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Stage: "decode", Field: typeErr.Field, Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return nil, &ValidationError{Stage: "decode", Reason: err.Error()}
	}

	if p.ExecutiveSummary == nil || strings.TrimSpace(*p.ExecutiveSummary) == "" {
		return nil, &ValidationError{Stage: "validate", Field: "executive_summary", Reason: "must be a non-empty string"}
	}
	if p.SentimentScore == nil {
		return nil, &ValidationError{Stage: "validate", Field: "sentiment_score", Reason: "missing"}
	}
	score := *p.SentimentScore
	if math.IsNaN(score) || score < -1 || score > 1 {
		return nil, &ValidationError{Stage: "validate", Field: "sentiment_score", Reason: fmt.Sprintf("%v is outside [-1, 1]", score)}
	}

	breakdown, err := validateBreakdown(p.SentimentBreakdown)
	if err != nil {
		return nil, err
	}

	items, err := validateWarRoomItems(p.WarRoomItems, maxItems)
	if err != nil {
		return nil, err
	}

	syn := &models.Synthesis{
		SeasonNote:         stringOr(p.SeasonNote, "Weekly Report"),
		ExecutiveSummary:   strings.TrimSpace(*p.ExecutiveSummary),
		SentimentScore:     score,
		SentimentLabel:     stringOr(p.SentimentLabel, "Neutral"),
		SentimentTrend:     stringOr(p.SentimentTrend, "Stable"),
		SentimentBreakdown: breakdown,
		Keywords:           cleanKeywords(p.Keywords, maxKeywords),
		WarRoomIntro:       stringOr(p.WarRoomIntro, ""),
		WarRoomItems:       items,
	}
	return syn, nil
}

// validateBreakdown rejects negative components and corrects rounding
// drift so the three shares always sum to 100. A missing breakdown gets
// the neutral default.
func validateBreakdown(b *breakdownPayload) (models.SentimentBreakdown, error) {
	if b == nil {
		return models.SentimentBreakdown{Positive: 33, Neutral: 34, Negative: 33}, nil
	}
	if b.Positive < 0 || b.Neutral < 0 || b.Negative < 0 {
		return models.SentimentBreakdown{}, &ValidationError{Stage: "validate", Field: "sentiment_breakdown", Reason: "components cannot be negative"}
	}
	total := b.Positive + b.Neutral + b.Negative
	if total == 0 {
		return models.SentimentBreakdown{Positive: 33, Neutral: 34, Negative: 33}, nil
	}
	if total != 100 {
		pos := int(math.Round(float64(b.Positive) / float64(total) * 100))
		neu := int(math.Round(float64(b.Neutral) / float64(total) * 100))
		neg := 100 - pos - neu
		// Rounding both shares up can push the remainder below zero;
		// absorb the overflow into the larger share.
		if neg < 0 {
			if pos >= neu {
				pos += neg
			} else {
				neu += neg
			}
			neg = 0
		}
		return models.SentimentBreakdown{Positive: pos, Neutral: neu, Negative: neg}, nil
	}
	return models.SentimentBreakdown{Positive: b.Positive, Neutral: b.Neutral, Negative: b.Negative}, nil
}

func validateWarRoomItems(items []itemPayload, maxItems int) ([]models.WarRoomItem, error) {
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	out := make([]models.WarRoomItem, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Headline) == "" {
			return nil, &ValidationError{Stage: "validate", Field: fmt.Sprintf("war_room_items[%d].headline", i), Reason: "must be a non-empty string"}
		}
		out = append(out, models.WarRoomItem{
			Headline:     strings.TrimSpace(it.Headline),
			Analysis:     strings.TrimSpace(it.Analysis),
			RelatedLinks: it.RelatedLinks,
		})
	}
	return out, nil
}

func cleanKeywords(keywords []string, limit int) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		out = append(out, kw)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func stringOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return strings.TrimSpace(*s)
}
