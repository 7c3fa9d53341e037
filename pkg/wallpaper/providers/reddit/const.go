package reddit

import "time"

const (
	// BaseURL is the public reddit endpoint. Listing JSON needs no
	// authentication, only a distinctive User-Agent.
	BaseURL = "https://www.reddit.com"

	// requestInterval paces listing requests. Reddit throttles anonymous
	// clients hard, so multi-subreddit runs space their requests out.
	requestInterval = time.Second
)
