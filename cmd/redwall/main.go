package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dixieflatline76/redwall/config"
	"github.com/dixieflatline76/redwall/pkg/wallpaper"
	"github.com/dixieflatline76/redwall/pkg/wallpaper/providers/reddit"
	"github.com/dixieflatline76/redwall/util/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "redwall:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger := log.New(cfg.Log.Level, cfg.Log.File)

	criteria, err := wallpaper.NewCriteria(cfg.MinResolution, cfg.MinAspect)
	if err != nil {
		return err
	}

	client := wallpaper.NewHTTPClient(cfg.UserAgent, cfg.Timeout)
	listing := reddit.New(client, logger.With().Str("component", "reddit").Logger())
	extractor := wallpaper.NewExtractor(criteria, cfg.Extensions,
		logger.With().Str("component", "extractor").Logger())
	store := wallpaper.NewFileStore(cfg.DownloadDir)
	engine := wallpaper.NewEngine(wallpaper.NewHTTPFetcher(client), store, cfg.Workers,
		logger.With().Str("component", "sync").Logger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.EnsureDir(); err != nil {
		return err
	}
	if cfg.Clear {
		logger.Info().Str("dir", store.Dir()).Msg("clearing download directory")
		if err := store.Clear(); err != nil {
			return err
		}
	}

	// A failed listing drops that subreddit from the run; the sync still
	// converges on whatever the remaining listings produced.
	var candidates []wallpaper.Candidate
	for _, q := range cfg.Subreddits {
		posts, err := listing.FetchPosts(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn().Str("subreddit", q.Name).Err(err).Msg("listing fetch failed, skipping")
			continue
		}
		for _, post := range posts {
			if c, ok := extractor.Extract(post); ok {
				candidates = append(candidates, c)
			}
		}
	}
	logger.Info().Int("candidates", len(candidates)).Str("dir", store.Dir()).Msg("starting sync")

	if _, err := engine.Run(ctx, candidates); err != nil {
		return err
	}
	return nil
}
