package collect

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/bleacherbot/bleacherbot/internal/clean"
	"github.com/bleacherbot/bleacherbot/models"
)

// snippetLen bounds the self-text excerpt carried per community post.
const snippetLen = 300

// FetchCommunity scrapes hot posts from the team subreddit via its
// public RSS feed, which needs no credentials and works from CI
// networks. Bot posts are dropped, HTML summaries are reduced to plain
// text, and posts with substantive self-text sort first so the most
// discussion-worthy ones survive the prompt cap.
func (c *Collector) FetchCommunity(ctx context.Context) ([]models.SourceRecord, error) {
	url := fmt.Sprintf("%s/r/%s/hot.rss?limit=%d", c.redditBaseURL, c.team.Subreddit, c.cfg.CommunityLimit)
	c.logger.Printf("fetching community posts from r/%s", c.team.Subreddit)

	feed, err := c.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing subreddit feed: %w", err)
	}

	records := make([]models.SourceRecord, 0, c.cfg.CommunityLimit)
	for _, item := range feed.Items {
		author := itemAuthor(item)
		if isBot(author) {
			continue
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		r := models.SourceRecord{
			Title:    title,
			Link:     item.Link,
			Source:   author,
			Summary:  clean.RedditSnippet(itemBody(item), snippetLen),
			Category: models.CategoryCommunity,
		}
		if item.PublishedParsed != nil {
			r.PublishedAt = *item.PublishedParsed
		}
		records = append(records, r)
		if len(records) == c.cfg.CommunityLimit {
			break
		}
	}

	// Self-text posts carry more sentiment signal than link posts.
	sort.SliceStable(records, func(i, j int) bool {
		return len(records[i].Summary) > len(records[j].Summary)
	})
	return records, nil
}

func itemAuthor(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	return "u/unknown"
}

func itemBody(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}

func isBot(author string) bool {
	a := strings.ToLower(strings.TrimPrefix(author, "/"))
	return a == "u/automoderator" || a == "automoderator"
}
