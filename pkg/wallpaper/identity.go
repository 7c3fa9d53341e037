package wallpaper

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/url"
	"path"
	"strings"
)

// ErrMissingExtension is returned when no file extension can be inferred
// from a URL path.
var ErrMissingExtension = errors.New("url has no file extension")

// Candidate is a filter-passed, resolved image reference eligible for
// download.
type Candidate struct {
	ImageURL string
}

// extensionOf returns the extension of the final path segment of rawURL,
// without the leading dot. Query strings and fragments are ignored.
func extensionOf(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := path.Ext(p)
	if ext == "" || ext == "." {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// IdentifierFor maps an image URL to its cache filename: the hex MD5 digest
// of the raw URL string plus the extension inferred from the URL path.
// The digest covers the URL, not the downloaded bytes, so the identifier is
// stable across runs without fetching anything. Returns ErrMissingExtension
// when the URL path carries no extension.
func IdentifierFor(imageURL string) (string, error) {
	ext := extensionOf(imageURL)
	if ext == "" {
		return "", ErrMissingExtension
	}
	sum := md5.Sum([]byte(imageURL))
	return hex.EncodeToString(sum[:]) + "." + ext, nil
}
