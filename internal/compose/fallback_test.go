package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bleacherbot/bleacherbot/models"
)

func fallbackRecords() map[models.Category][]models.SourceRecord {
	return map[models.Category][]models.SourceRecord{
		models.CategoryNews: {
			{Title: "Lions extend Sewell", Link: "https://example.com/sewell", Source: "ESPN", Category: models.CategoryNews},
			{Title: "Lions lose coordinator", Link: "https://example.com/oc", Source: "ESPN", Category: models.CategoryNews},
		},
		models.CategoryCommunity: {
			{Title: "Sewell deal megathread", Source: "u/fan", Category: models.CategoryCommunity},
		},
		models.CategorySeasonal: {
			{Title: "Combine targets for the Lions", Link: "https://example.com/combine", Source: "NFL.com", Category: models.CategorySeasonal},
		},
	}
}

func TestFallback_Deterministic(t *testing.T) {
	first := Fallback("Detroit Lions", fallbackRecords(), 5, 6)
	second := Fallback("Detroit Lions", fallbackRecords(), 5, 6)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical fallback synthesis for identical input")
	}
}

func TestFallback_NeutralSentiment(t *testing.T) {
	syn := Fallback("Detroit Lions", fallbackRecords(), 5, 6)
	if syn.SentimentScore != 0 {
		t.Fatalf("expected neutral score, got %v", syn.SentimentScore)
	}
	if syn.SentimentLabel != "Unavailable" {
		t.Fatalf("expected label Unavailable, got %q", syn.SentimentLabel)
	}
	if got := syn.SentimentBreakdown.Positive + syn.SentimentBreakdown.Neutral + syn.SentimentBreakdown.Negative; got != 100 {
		t.Fatalf("expected breakdown summing to 100, got %d", got)
	}
}

func TestFallback_SummaryCountsRecords(t *testing.T) {
	syn := Fallback("Detroit Lions", fallbackRecords(), 5, 6)
	if !strings.Contains(syn.ExecutiveSummary, "2 news headlines") {
		t.Fatalf("expected news count in summary, got %q", syn.ExecutiveSummary)
	}
	if !strings.Contains(syn.ExecutiveSummary, "1 community posts") {
		t.Fatalf("expected community count in summary, got %q", syn.ExecutiveSummary)
	}
	if !strings.Contains(syn.ExecutiveSummary, "Detroit Lions") {
		t.Fatalf("expected team name in summary, got %q", syn.ExecutiveSummary)
	}
}

func TestFallback_WarRoomPrefersSeasonal(t *testing.T) {
	syn := Fallback("Detroit Lions", fallbackRecords(), 2, 6)
	if len(syn.WarRoomItems) != 2 {
		t.Fatalf("expected 2 war room items, got %d", len(syn.WarRoomItems))
	}
	if syn.WarRoomItems[0].Headline != "Combine targets for the Lions" {
		t.Fatalf("expected seasonal headline first, got %q", syn.WarRoomItems[0].Headline)
	}
	if got := syn.WarRoomItems[0].RelatedLinks; len(got) != 1 || got[0] != "https://example.com/combine" {
		t.Fatalf("expected source link carried over, got %v", got)
	}
}

func TestFallback_EmptyInput(t *testing.T) {
	syn := Fallback("Detroit Lions", nil, 5, 6)
	if syn.ExecutiveSummary == "" {
		t.Fatal("expected non-empty summary for empty input")
	}
	if len(syn.WarRoomItems) != 0 {
		t.Fatalf("expected no war room items, got %d", len(syn.WarRoomItems))
	}
	if len(syn.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", syn.Keywords)
	}
}

func TestCapitalizedKeywords_FrequencyThenFirstSeen(t *testing.T) {
	records := map[models.Category][]models.SourceRecord{
		models.CategoryNews: {
			{Title: "Sewell and Goff headline Lions minicamp"},
			{Title: "Goff throws at Lions minicamp"},
			{Title: "Lions open minicamp"},
		},
	}
	got := capitalizedKeywords(records, 3)
	want := []string{"Lions", "Goff", "Sewell"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
