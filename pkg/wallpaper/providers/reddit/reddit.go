package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/redwall/config"
	"github.com/dixieflatline76/redwall/pkg/provider"
)

// Provider implements ListingProvider for reddit's public listing JSON.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// New creates a reddit Provider using the given client. The client is
// expected to carry the User-Agent transport; reddit rejects anonymous
// default agents.
func New(client *http.Client, logger zerolog.Logger) *Provider {
	return &Provider{
		baseURL:    BaseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		log:        logger,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "Reddit"
}

// listingEnvelope is the slice of reddit's listing JSON we care about.
type listingEnvelope struct {
	Data struct {
		Children []struct {
			Data struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchPosts fetches one subreddit listing and flattens it into posts.
func (p *Provider) FetchPosts(ctx context.Context, q config.SubredditQuery) ([]provider.Post, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	listingURL := fmt.Sprintf("%s/r/%s/%s.json?limit=%d&t=%s",
		p.baseURL, url.PathEscape(q.Name), q.Sort, q.Limit, q.Timeframe)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating listing request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching r/%s: %w", q.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching r/%s: status %d", q.Name, resp.StatusCode)
	}

	var envelope listingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding r/%s listing: %w", q.Name, err)
	}

	posts := make([]provider.Post, 0, len(envelope.Data.Children))
	for _, child := range envelope.Data.Children {
		if child.Data.URL == "" {
			continue
		}
		posts = append(posts, provider.Post{
			Title: child.Data.Title,
			URL:   child.Data.URL,
		})
	}
	p.log.Debug().Str("subreddit", q.Name).Int("posts", len(posts)).Msg("listing fetched")
	return posts, nil
}
