package compose

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/models"
	"github.com/bleacherbot/bleacherbot/provider"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Model() string { return "stub" }

func newTestComposer(p provider.Provider) *Composer {
	team := config.TeamConfig{Name: "Detroit Lions", Subreddit: "detroitlions"}
	cfg := config.ComposeConfig{RecordsPerCategory: 10, MaxWarRoomItems: 5, MaxKeywords: 6}
	return NewComposer(p, team, cfg, log.New(io.Discard, "", 0))
}

func TestCompose_HappyPath(t *testing.T) {
	stub := &stubProvider{response: validPayload}
	report, err := newTestComposer(stub).Compose(context.Background(), fallbackRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Degraded {
		t.Fatal("expected non-degraded report")
	}
	if report.Synthesis.SentimentScore != 0.4 {
		t.Fatalf("expected score 0.4, got %v", report.Synthesis.SentimentScore)
	}
	if report.RunID == "" {
		t.Fatal("expected run ID to be set")
	}
	if report.TeamName != "Detroit Lions" {
		t.Fatalf("expected team name, got %q", report.TeamName)
	}
}

func TestCompose_ModelUnavailable(t *testing.T) {
	stub := &stubProvider{err: &provider.ModelUnavailableError{Attempts: 3}}
	records := fallbackRecords()
	report, err := newTestComposer(stub).Compose(context.Background(), records)
	if err != nil {
		t.Fatalf("expected fallback report, got error: %v", err)
	}
	if !report.Degraded {
		t.Fatal("expected degraded report")
	}
	if report.Synthesis.SentimentScore != 0 {
		t.Fatalf("expected neutral fallback score, got %v", report.Synthesis.SentimentScore)
	}
	if len(report.RawByCategory[models.CategoryNews]) != len(records[models.CategoryNews]) {
		t.Fatal("expected raw records carried into degraded report")
	}
}

func TestCompose_MalformedModelOutput(t *testing.T) {
	stub := &stubProvider{response: `{"executive_summary": "ok", "sentiment_score": 2.0}`}
	report, err := newTestComposer(stub).Compose(context.Background(), fallbackRecords())
	if err != nil {
		t.Fatalf("expected fallback report, got error: %v", err)
	}
	if !report.Degraded {
		t.Fatal("expected degraded report for out-of-range score")
	}
	if report.Synthesis.SentimentLabel != "Unavailable" {
		t.Fatalf("expected fallback label, got %q", report.Synthesis.SentimentLabel)
	}
}

func TestCompose_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stub := &stubProvider{err: ctx.Err()}
	if _, err := newTestComposer(stub).Compose(ctx, fallbackRecords()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestCompose_EmptyRecords(t *testing.T) {
	stub := &stubProvider{response: validPayload}
	report, err := newTestComposer(stub).Compose(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Degraded {
		t.Fatal("expected non-degraded report when the model still answers")
	}
	if stub.calls != 1 {
		t.Fatalf("expected a single model call, got %d", stub.calls)
	}
}
