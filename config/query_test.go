package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubredditQueryDefaults(t *testing.T) {
	q, err := ParseSubredditQuery("wallpapers")
	require.NoError(t, err)
	assert.Equal(t, SubredditQuery{
		Name:      "wallpapers",
		Sort:      "hot",
		Limit:     25,
		Timeframe: "day",
	}, q)
}

func TestParseSubredditQueryAllFields(t *testing.T) {
	q, err := ParseSubredditQuery("earthporn:top:50:week")
	require.NoError(t, err)
	assert.Equal(t, SubredditQuery{
		Name:      "earthporn",
		Sort:      "top",
		Limit:     50,
		Timeframe: "week",
	}, q)
}

func TestParseSubredditQueryEmptyInnerFieldsTakeDefaults(t *testing.T) {
	q, err := ParseSubredditQuery("wallpapers::50")
	require.NoError(t, err)
	assert.Equal(t, "hot", q.Sort)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "day", q.Timeframe)

	q, err = ParseSubredditQuery("wallpapers:top::month")
	require.NoError(t, err)
	assert.Equal(t, "top", q.Sort)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "month", q.Timeframe)
}

func TestParseSubredditQueryNormalizesCase(t *testing.T) {
	q, err := ParseSubredditQuery("wallpapers:TOP:10:ALL")
	require.NoError(t, err)
	assert.Equal(t, "top", q.Sort)
	assert.Equal(t, "all", q.Timeframe)
}

func TestParseSubredditQueryRejections(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"blank name", " :hot"},
		{"unknown sort", "wallpapers:best"},
		{"limit not a number", "wallpapers:hot:many"},
		{"limit zero", "wallpapers:hot:0"},
		{"limit over cap", "wallpapers:hot:101"},
		{"unknown timeframe", "wallpapers:top:25:fortnight"},
		{"too many fields", "wallpapers:top:25:day:extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubredditQuery(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseSubredditQueriesFailsFast(t *testing.T) {
	_, err := ParseSubredditQueries([]string{"wallpapers", "bad:sort:here:x:y"})
	assert.Error(t, err)

	queries, err := ParseSubredditQueries([]string{"wallpapers", "earthporn:top"})
	require.NoError(t, err)
	assert.Len(t, queries, 2)
}
