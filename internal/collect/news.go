package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/bleacherbot/bleacherbot/config"
	"github.com/bleacherbot/bleacherbot/models"
)

// expandedSummaryLen caps how much extracted article text is carried
// into the prompt per expanded record.
const expandedSummaryLen = 500

// FetchNews scrapes Google News RSS for general team headlines.
func (c *Collector) FetchNews(ctx context.Context) ([]models.SourceRecord, error) {
	records, err := c.fetchGoogleNews(ctx, c.team.NewsQuery, models.CategoryNews, c.cfg.NewsLimit)
	if err != nil {
		return nil, err
	}
	c.expandArticles(ctx, records)
	return records, nil
}

// FetchSeasonal scrapes Google News RSS with a seasonally-adjusted
// keyword for front-office, draft, and roster-move coverage.
func (c *Collector) FetchSeasonal(ctx context.Context) ([]models.SourceRecord, error) {
	keyword := config.SeasonalKeyword(c.now().Month())
	encoded := strings.NewReplacer(" ", "+", "/", "+").Replace(keyword)
	query := c.team.NewsQuery + "+" + encoded
	return c.fetchGoogleNews(ctx, query, models.CategorySeasonal, c.cfg.SeasonalLimit)
}

func (c *Collector) fetchGoogleNews(ctx context.Context, query string, category models.Category, limit int) ([]models.SourceRecord, error) {
	url := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", c.newsBaseURL, query)
	c.logger.Printf("fetching %s: %s", category, url)

	feed, err := c.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing %s feed: %w", category, err)
	}

	records := make([]models.SourceRecord, 0, limit)
	for _, item := range feed.Items {
		title := cleanTitle(item.Title)
		if title == "" {
			continue
		}
		r := models.SourceRecord{
			Title:    title,
			Link:     item.Link,
			Source:   outletName(item.Title),
			Category: category,
		}
		if item.PublishedParsed != nil {
			r.PublishedAt = *item.PublishedParsed
		}
		records = append(records, r)
		if len(records) == limit {
			break
		}
	}
	return records, nil
}

// expandArticles fetches the full article text for the first few news
// records so the model sees more than a headline. Best effort: a failed
// fetch keeps the record as-is.
func (c *Collector) expandArticles(ctx context.Context, records []models.SourceRecord) {
	n := c.cfg.ExpandArticles
	if n > len(records) {
		n = len(records)
	}
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return
		}
		if records[i].Link == "" {
			continue
		}
		article, err := readability.FromURL(records[i].Link, c.cfg.FeedTimeout)
		if err != nil {
			c.logger.Printf("article expansion failed for %q: %v", records[i].Title, err)
			continue
		}
		text := strings.Join(strings.Fields(article.TextContent), " ")
		if runes := []rune(text); len(runes) > expandedSummaryLen {
			text = string(runes[:expandedSummaryLen])
		}
		records[i].Summary = text
	}
}

// cleanTitle strips the trailing " - Outlet Name" suffix Google News
// appends to every headline.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return title
}

// outletName extracts the outlet from the Google News title suffix.
func outletName(title string) string {
	title = strings.TrimSpace(title)
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		if outlet := strings.TrimSpace(title[idx+3:]); outlet != "" {
			return outlet
		}
	}
	return "News"
}
