package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaDisabledPassesEverything(t *testing.T) {
	c, err := NewCriteria("", 10.0)
	require.NoError(t, err)

	assert.True(t, c.Passes("City at night [1920x1080]"))
	assert.True(t, c.Passes("no tag at all"))
	assert.True(t, c.Passes(""))
}

func TestCriteriaPasses(t *testing.T) {
	c, err := NewCriteria("1280x720", 1.3)
	require.NoError(t, err)

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"meets all minimums", "City at night [1920x1080]", true},
		{"no tag fails strict", "City at night", false},
		{"too small", "Alley [800x600]", false},
		{"wide enough but short", "Banner [1920x600]", false},
		{"portrait fails aspect", "Tower [1080x1920]", false},
		{"uppercase separator", "Lake [2560X1440]", true},
		{"internal whitespace", "Ridge [ 3840 x 2160 ]", true},
		{"zero height is malformed", "Broken [1920x0]", false},
		{"tag embedded mid-title", "[OC] Dunes [1920x1080] at dawn", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Passes(tt.title))
		})
	}
}

func TestCriteriaExactBoundary(t *testing.T) {
	c, err := NewCriteria("1920x1080", 16.0/9.0)
	require.NoError(t, err)

	// Equal on every axis still passes.
	assert.True(t, c.Passes("[1920x1080]"))
	assert.False(t, c.Passes("[1919x1080]"))
	assert.False(t, c.Passes("[1920x1079]"))
}

func TestNewCriteriaRejectsMalformedResolution(t *testing.T) {
	for _, bad := range []string{"abc", "1920", "1920x", "x1080", "0x1080", "1920x-1"} {
		_, err := NewCriteria(bad, 0)
		assert.Error(t, err, "expected error for %q", bad)
	}
}
