// Package pipeline wires one full digest run: collect, compose, render,
// deliver.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/internal/collect"
	"github.com/bleacherbot/bleacherbot/internal/compose"
	"github.com/bleacherbot/bleacherbot/internal/deliver"
	"github.com/bleacherbot/bleacherbot/internal/metrics"
	"github.com/bleacherbot/bleacherbot/internal/render"
	"github.com/bleacherbot/bleacherbot/models"
	"github.com/bleacherbot/bleacherbot/provider"
)

// Pipeline owns the collaborators for digest runs. The same Pipeline is
// reused across runs in daemon mode; each run's data is single-owner and
// discarded at the end of the run.
type Pipeline struct {
	cfg       *config.Config
	collector *collect.Collector
	composer  *compose.Composer
	deliverer *deliver.Deliverer
	logger    *log.Logger

	mu         sync.RWMutex
	lastHTML   []byte
	lastReport *models.Report
}

// New builds a Pipeline. Configuration problems, including a missing
// model credential, surface here before any network call.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags)
	}

	p, err := provider.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("configuring model provider: %w", err)
	}
	retrying := provider.WithRetry(p, cfg.LLM.MaxRetries, cfg.LLM.RetryBackoff, cfg.LLM.Timeout,
		log.New(log.Writer(), "[MODEL] ", log.LstdFlags))

	return &Pipeline{
		cfg:       cfg,
		collector: collect.New(cfg.Team, cfg.Sources, log.New(log.Writer(), "[COLLECT] ", log.LstdFlags)),
		composer:  compose.NewComposer(retrying, cfg.Team, cfg.Compose, log.New(log.Writer(), "[COMPOSE] ", log.LstdFlags)),
		deliverer: deliver.New(cfg.Email, cfg.General, log.New(log.Writer(), "[DELIVER] ", log.LstdFlags)),
		logger:    logger,
	}, nil
}

// Run executes one full digest run.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()
	p.logger.Printf("starting run for %s", p.cfg.Team.Name)

	records := p.collector.CollectAll(ctx)
	for cat, recs := range records {
		metrics.RecordsCollected.WithLabelValues(string(cat)).Add(float64(len(recs)))
	}

	report, err := p.composer.Compose(ctx, records)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("composing report: %w", err)
	}
	if report.Degraded {
		metrics.FallbackRunsTotal.Inc()
	}

	html, err := render.Render(report)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("rendering report: %w", err)
	}

	if err := p.deliverer.Deliver(ctx, report, html); err != nil {
		metrics.RunsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("delivering report: %w", err)
	}

	p.mu.Lock()
	p.lastHTML = html
	p.lastReport = report
	p.mu.Unlock()

	outcome := "delivered"
	if p.cfg.General.DryRun {
		outcome = "dry_run"
	}
	metrics.RunsTotal.WithLabelValues(outcome).Inc()
	metrics.RunDuration.Observe(time.Since(started).Seconds())
	p.logger.Printf("run %s finished in %s (degraded=%v)", report.RunID, time.Since(started).Round(time.Millisecond), report.Degraded)
	return nil
}

// Last returns the most recently rendered report, for the preview
// server. Both return values are nil before the first successful run.
func (p *Pipeline) Last() ([]byte, *models.Report) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastHTML, p.lastReport
}
