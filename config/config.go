package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Built-in defaults for everything not supplied by flag or file.
const (
	DefaultUserAgent = "redwall/1.0 (wallpaper sync; github.com/dixieflatline76/redwall)"
	DefaultTimeout   = 30 * time.Second
	DefaultWorkers   = 1
	DefaultLogLevel  = "info"
)

// DefaultExtensions is the direct-image extension allow list.
var DefaultExtensions = []string{"jpg", "jpeg", "png"}

// LogConfig selects log verbosity and an optional rotating log file.
type LogConfig struct {
	Level string
	File  string
}

// Config is the complete, immutable run configuration, assembled once by
// Load. Components receive it (or slices of it) by value and never mutate
// shared state.
type Config struct {
	Subreddits    []SubredditQuery
	MinResolution string
	MinAspect     float64
	DownloadDir   string
	Clear         bool
	Extensions    []string
	UserAgent     string
	Timeout       time.Duration
	Workers       int
	Log           LogConfig
}

// DefaultDownloadDir returns the default cache directory using XDG_CACHE_HOME.
func DefaultDownloadDir() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, _ := os.UserHomeDir()
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, "redwall")
}

// Load builds the Config from command line arguments, an optional TOML
// config file, and built-in defaults, in that precedence order. args is
// the command line without the program name.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("redwall", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	fs.StringSlice("subreddits", nil, "subreddit queries as name:sort:limit:timeframe")
	fs.String("min-resolution", "", "minimum resolution WIDTHxHEIGHT, empty disables filtering")
	fs.Float64("min-aspect", 0, "minimum aspect ratio (width/height)")
	fs.String("dir", DefaultDownloadDir(), "download directory")
	fs.Bool("clear", false, "clear the download directory before syncing")
	fs.StringSlice("extensions", DefaultExtensions, "direct-image extension allow list")
	fs.String("user-agent", DefaultUserAgent, "User-Agent for all remote requests")
	fs.Duration("timeout", DefaultTimeout, "per-request HTTP timeout")
	fs.Int("workers", DefaultWorkers, "concurrent downloads, 1 is sequential")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("log-file", "", "optional rotating log file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	bindings := map[string]string{
		"subreddits":     "subreddits",
		"min_resolution": "min-resolution",
		"min_aspect":     "min-aspect",
		"download_dir":   "dir",
		"clear":          "clear",
		"extensions":     "extensions",
		"user_agent":     "user-agent",
		"timeout":        "timeout",
		"workers":        "workers",
		"log.level":      "log-level",
		"log.file":       "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("redwall")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultDownloadDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	queries, err := ParseSubredditQueries(v.GetStringSlice("subreddits"))
	if err != nil {
		return nil, err
	}
	if len(queries) == 0 {
		return nil, errors.New("no subreddits configured")
	}

	workers := v.GetInt("workers")
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	cfg := &Config{
		Subreddits:    queries,
		MinResolution: v.GetString("min_resolution"),
		MinAspect:     v.GetFloat64("min_aspect"),
		DownloadDir:   v.GetString("download_dir"),
		Clear:         v.GetBool("clear"),
		Extensions:    v.GetStringSlice("extensions"),
		UserAgent:     v.GetString("user_agent"),
		Timeout:       v.GetDuration("timeout"),
		Workers:       workers,
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}
	return cfg, nil
}
