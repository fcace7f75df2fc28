// Package compose is the core of the digest pipeline: it turns scraped
// records into a validated Synthesis by prompting a model, strictly
// validating its output, and falling back to a deterministic rule-based
// synthesis when the model is unavailable or malformed. Its contract is
// totality: Compose always yields a usable Report.
package compose

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/models"
	"github.com/bleacherbot/bleacherbot/provider"
)

// Composer runs the compose stage for one report.
type Composer struct {
	provider provider.Provider
	team     config.TeamConfig
	cfg      config.ComposeConfig
	logger   *log.Logger
	now      func() time.Time
}

// NewComposer wires a Composer. The provider is expected to already
// carry its retry policy; credential problems have been rejected at
// provider construction.
func NewComposer(p provider.Provider, team config.TeamConfig, cfg config.ComposeConfig, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.New(log.Writer(), "[COMPOSE] ", log.LstdFlags)
	}
	return &Composer{provider: p, team: team, cfg: cfg, logger: logger, now: time.Now}
}

// Compose turns the collected records into a Report. Model and
// validation failures are absorbed into the fallback path; the returned
// error is non-nil only when the run context itself was cancelled.
func (c *Composer) Compose(ctx context.Context, records map[models.Category][]models.SourceRecord) (*models.Report, error) {
	now := c.now()
	spec := BuildPrompt(c.team.Name, records, c.cfg.RecordsPerCategory, now)
	for _, cat := range models.Categories {
		c.logger.Printf("prompt includes %d %s records", spec.Included[cat], cat)
	}

	syn, degraded := c.synthesize(ctx, spec, records)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return AssembleReport(c.team.Name, syn, records, degraded, now), nil
}

func (c *Composer) synthesize(ctx context.Context, spec PromptSpec, records map[models.Category][]models.SourceRecord) (models.Synthesis, bool) {
	raw, err := c.provider.Generate(ctx, spec.System, spec.User)
	if err != nil {
		var unavailable *provider.ModelUnavailableError
		if errors.As(err, &unavailable) {
			c.logger.Printf("model unavailable, using fallback: %v", unavailable)
		} else {
			c.logger.Printf("model call failed, using fallback: %v", err)
		}
		return c.fallback(records), true
	}

	syn, err := ParseSynthesis(raw, c.cfg.MaxWarRoomItems, c.cfg.MaxKeywords)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) && vErr.Field != "" {
			c.logger.Printf("model output rejected at field %q, using fallback: %v", vErr.Field, vErr)
		} else {
			c.logger.Printf("model output rejected, using fallback: %v", err)
		}
		return c.fallback(records), true
	}

	c.logger.Printf("synthesis validated: score=%.2f label=%q items=%d keywords=%d",
		syn.SentimentScore, syn.SentimentLabel, len(syn.WarRoomItems), len(syn.Keywords))
	return *syn, false
}

func (c *Composer) fallback(records map[models.Category][]models.SourceRecord) models.Synthesis {
	return Fallback(c.team.Name, records, c.cfg.MaxWarRoomItems, c.cfg.MaxKeywords)
}
