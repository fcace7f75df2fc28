// Package collect fetches the raw feed data the digest is built from:
// Google News RSS for general and seasonal headlines, and the team
// subreddit's hot.rss for community sentiment.
package collect

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/internal/metrics"
	"github.com/bleacherbot/bleacherbot/models"
)

const (
	defaultNewsBaseURL   = "https://news.google.com/rss/search"
	defaultRedditBaseURL = "https://www.reddit.com"
)

// Collector fetches all source categories for one run.
type Collector struct {
	team   config.TeamConfig
	cfg    config.SourcesConfig
	parser *gofeed.Parser
	logger *log.Logger
	now    func() time.Time

	// overridable in tests
	newsBaseURL   string
	redditBaseURL string
}

// New builds a Collector with a bounded-timeout HTTP client.
func New(team config.TeamConfig, cfg config.SourcesConfig, logger *log.Logger) *Collector {
	parser := gofeed.NewParser()
	parser.UserAgent = cfg.UserAgent
	parser.Client = &http.Client{Timeout: cfg.FeedTimeout}
	if logger == nil {
		logger = log.New(log.Writer(), "[COLLECT] ", log.LstdFlags)
	}
	return &Collector{
		team:          team,
		cfg:           cfg,
		parser:        parser,
		logger:        logger,
		now:           time.Now,
		newsBaseURL:   defaultNewsBaseURL,
		redditBaseURL: defaultRedditBaseURL,
	}
}

// CollectAll fetches every category concurrently and joins before
// returning. A failed source degrades to an empty category rather than
// failing the run; composing proceeds with whatever arrived.
func (c *Collector) CollectAll(ctx context.Context) map[models.Category][]models.SourceRecord {
	fetchers := []struct {
		category models.Category
		fetch    func(context.Context) ([]models.SourceRecord, error)
	}{
		{models.CategoryNews, c.FetchNews},
		{models.CategoryCommunity, c.FetchCommunity},
		{models.CategorySeasonal, c.FetchSeasonal},
	}

	out := make(map[models.Category][]models.SourceRecord, len(fetchers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, f := range fetchers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := f.fetch(ctx)
			if err != nil {
				c.logger.Printf("%s fetch failed, continuing without it: %v", f.category, err)
				metrics.SourceFailures.WithLabelValues(string(f.category)).Inc()
				records = nil
			}
			mu.Lock()
			out[f.category] = records
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}
