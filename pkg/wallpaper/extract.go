package wallpaper

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dixieflatline76/redwall/pkg/provider"
)

// imgurHostMarker identifies imgur gallery links, which usually omit the
// direct file extension but serve the image when one is appended.
const imgurHostMarker = "imgur.com"

// Extractor turns listing posts into download candidates. Posts are
// filtered against the resolution criteria first, then their URL is
// resolved to a direct image link or dropped.
type Extractor struct {
	criteria Criteria
	allowed  map[string]bool
	log      zerolog.Logger
}

// NewExtractor creates an Extractor. extensions is the case-sensitive
// allow list of direct-image extensions, e.g. jpg, jpeg, png.
func NewExtractor(criteria Criteria, extensions []string, logger zerolog.Logger) *Extractor {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = true
	}
	return &Extractor{criteria: criteria, allowed: allowed, log: logger}
}

// Extract resolves a single post into a Candidate. The second return value
// is false when the post fails the criteria or its URL cannot be resolved
// to a direct image. Rejections are logged and never abort a run.
func (x *Extractor) Extract(post provider.Post) (Candidate, bool) {
	if !x.criteria.Passes(post.Title) {
		x.log.Debug().Str("title", post.Title).Msg("post rejected by resolution criteria")
		return Candidate{}, false
	}

	if x.allowed[extensionOf(post.URL)] {
		return Candidate{ImageURL: post.URL}, true
	}

	if host := hostOf(post.URL); strings.Contains(host, imgurHostMarker) {
		// Gallery link without a file extension. Appending .jpg usually
		// yields the direct image; a wrong guess surfaces later as a
		// fetch failure and the candidate is dropped there.
		return Candidate{ImageURL: post.URL + ".jpg"}, true
	}

	x.log.Debug().Str("url", post.URL).Msg("post has no resolvable direct image url")
	return Candidate{}, false
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
