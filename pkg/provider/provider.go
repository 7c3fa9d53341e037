package provider

import (
	"context"

	"github.com/dixieflatline76/redwall/config"
)

// Post is one entry of a remote listing: the free-text title and the URL
// the post links to. Posts are transient; nothing is persisted.
type Post struct {
	Title string
	URL   string
}

// ListingProvider fetches posts for a configured subreddit query.
type ListingProvider interface {
	// Name returns the provider name for logging.
	Name() string
	// FetchPosts fetches the listing for one query.
	FetchPosts(ctx context.Context, q config.SubredditQuery) ([]Post, error)
}
