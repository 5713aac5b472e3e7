package hackernews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"hnreader/types"

	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public Firebase endpoint of the Hacker News API
const DefaultBaseURL = "https://hacker-news.firebaseio.com"

// Fetcher is what the reader needs from the remote article source
type Fetcher interface {
	TopStories(ctx context.Context, limit int) ([]types.Article, error)
	Article(ctx context.Context, id int) (types.Article, error)
}

// Client is a thin HTTP client for the Hacker News v0 API
type Client struct {
	baseURL string
	client  *http.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client against baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// TopStoryIDs fetches the current ranking of top story ids
func (c *Client) TopStoryIDs(ctx context.Context) ([]int, error) {
	body, err := c.get(ctx, "/v0/topstories.json")
	if err != nil {
		return nil, fmt.Errorf("failed to get top stories: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode top stories: %w: %v", ErrDecode, err)
	}
	if ids == nil {
		return nil, fmt.Errorf("failed to decode top stories: %w: body is null", ErrDecode)
	}
	return ids, nil
}

// Article fetches a single item. A null item returns ErrMissingArticle.
func (c *Client) Article(ctx context.Context, id int) (types.Article, error) {
	body, err := c.get(ctx, fmt.Sprintf("/v0/item/%d.json", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	article, err := types.DecodeArticle(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode item %d: %w: %v", id, ErrDecode, err)
	}
	if article == nil {
		return nil, fmt.Errorf("item %d: %w", id, ErrMissingArticle)
	}
	return article, nil
}

// TopStories fetches the top story ids and the details of the first limit of them.
// Detail requests run in parallel and join all-or-nothing: any network or decode
// failure fails the whole call. Null items are skipped. Order follows the id ranking.
func (c *Client) TopStories(ctx context.Context, limit int) ([]types.Article, error) {
	ids, err := c.TopStoryIDs(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	results := make([]types.Article, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			article, err := c.Article(gctx, id)
			if errors.Is(err, ErrMissingArticle) {
				log.Printf("Skipping missing item %d", id)
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = article
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	articles := make([]types.Article, 0, len(results))
	for _, a := range results {
		if a != nil {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// get issues one GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: server returned %d: %s", ErrNetwork, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return body, nil
}
