package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults for fields omitted from a subreddit token.
const (
	DefaultSort      = "hot"
	DefaultLimit     = 25
	DefaultTimeframe = "day"

	maxLimit = 100
)

var validSorts = map[string]bool{
	"hot":           true,
	"new":           true,
	"rising":        true,
	"top":           true,
	"controversial": true,
}

var validTimeframes = map[string]bool{
	"hour":  true,
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
	"all":   true,
}

// SubredditQuery is one listing to fetch. Parsed from a colon-delimited
// token "name:sort:limit:timeframe" where every field after the name is
// optional and an empty field takes its default.
type SubredditQuery struct {
	Name      string
	Sort      string
	Limit     int
	Timeframe string
}

// ParseSubredditQuery parses a subreddit token. All validation happens
// here, at parse time, so a bad token fails the run before any network
// traffic.
func ParseSubredditQuery(token string) (SubredditQuery, error) {
	fields := strings.Split(token, ":")
	if len(fields) > 4 {
		return SubredditQuery{}, fmt.Errorf("subreddit token %q: too many fields, want name:sort:limit:timeframe", token)
	}

	q := SubredditQuery{
		Name:      strings.TrimSpace(fields[0]),
		Sort:      DefaultSort,
		Limit:     DefaultLimit,
		Timeframe: DefaultTimeframe,
	}
	if q.Name == "" {
		return SubredditQuery{}, fmt.Errorf("subreddit token %q: missing subreddit name", token)
	}

	if len(fields) > 1 && fields[1] != "" {
		sort := strings.ToLower(strings.TrimSpace(fields[1]))
		if !validSorts[sort] {
			return SubredditQuery{}, fmt.Errorf("subreddit token %q: unknown sort %q", token, fields[1])
		}
		q.Sort = sort
	}

	if len(fields) > 2 && fields[2] != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return SubredditQuery{}, fmt.Errorf("subreddit token %q: limit is not a number: %w", token, err)
		}
		if limit < 1 || limit > maxLimit {
			return SubredditQuery{}, fmt.Errorf("subreddit token %q: limit %d out of range 1..%d", token, limit, maxLimit)
		}
		q.Limit = limit
	}

	if len(fields) > 3 && fields[3] != "" {
		tf := strings.ToLower(strings.TrimSpace(fields[3]))
		if !validTimeframes[tf] {
			return SubredditQuery{}, fmt.Errorf("subreddit token %q: unknown timeframe %q", token, fields[3])
		}
		q.Timeframe = tf
	}

	return q, nil
}

// ParseSubredditQueries parses a list of tokens, failing on the first bad one.
func ParseSubredditQueries(tokens []string) ([]SubredditQuery, error) {
	queries := make([]SubredditQuery, 0, len(tokens))
	for _, token := range tokens {
		q, err := ParseSubredditQuery(token)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}
