package wallpaper

import (
	"net/http"
	"time"
)

// UserAgentTransport wraps an http.RoundTripper and adds a User-Agent
// header. Reddit throttles or rejects requests carrying the default Go
// agent, so every outgoing request goes through this.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent header.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	return t.RoundTripper.RoundTrip(clonedReq)
}

// NewHTTPClient builds the shared client: configured User-Agent on every
// request, nothing else unusual.
func NewHTTPClient(userAgent string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &UserAgentTransport{
			RoundTripper: http.DefaultTransport,
			UserAgent:    userAgent,
		},
	}
}
