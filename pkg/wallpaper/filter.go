package wallpaper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// resolutionTagRegex matches a bracketed resolution tag anywhere in a post
// title, e.g. "[1920x1080]", "[ 2560 X 1440 ]".
var resolutionTagRegex = regexp.MustCompile(`\[\s*(\d+)\s*[xX]\s*(\d+)\s*\]`)

// Criteria decides whether a post title's advertised resolution is good
// enough. The zero value passes everything.
type Criteria struct {
	minWidth  int
	minHeight int
	minAspect float64
	enabled   bool
}

// NewCriteria builds a Criteria from a "WIDTHxHEIGHT" string and a minimum
// aspect ratio. An empty minResolution disables filtering entirely.
func NewCriteria(minResolution string, minAspect float64) (Criteria, error) {
	if minResolution == "" {
		return Criteria{}, nil
	}
	parts := strings.SplitN(strings.ToLower(minResolution), "x", 2)
	if len(parts) != 2 {
		return Criteria{}, fmt.Errorf("invalid resolution %q: want WIDTHxHEIGHT", minResolution)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Criteria{}, fmt.Errorf("invalid resolution width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Criteria{}, fmt.Errorf("invalid resolution height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return Criteria{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", minResolution)
	}
	return Criteria{minWidth: w, minHeight: h, minAspect: minAspect, enabled: true}, nil
}

// Passes reports whether the title advertises a resolution meeting the
// criteria. With filtering disabled every title passes. With filtering
// enabled a title without a parsable [WxH] tag fails: absent metadata is
// treated as a reject, not a pass-through.
func (c Criteria) Passes(title string) bool {
	if !c.enabled {
		return true
	}
	m := resolutionTagRegex.FindStringSubmatch(title)
	if m == nil {
		return false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	if h == 0 {
		// Malformed metadata. Reject rather than divide by zero.
		return false
	}
	aspect := float64(w) / float64(h)
	return w >= c.minWidth && h >= c.minHeight && aspect >= c.minAspect
}
