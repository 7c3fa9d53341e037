package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Store is the engine's view of the download directory: list what is
// there, commit new entries, remove stale ones.
type Store interface {
	List() (map[string]bool, error)
	Write(id string, data []byte) error
	Delete(id string) error
}

// Result reports what one synchronization run did, keyed by identifier.
type Result struct {
	Written map[string]bool // cache misses downloaded this run
	Skipped map[string]bool // cache hits, left untouched
	Pruned  map[string]bool // stale entries deleted
}

// Engine reconciles the download directory against a candidate list:
// download what is wanted and missing, keep what is wanted and present,
// delete what is no longer wanted. Running it twice with an unchanged
// candidate list is a no-op on the second run.
type Engine struct {
	fetcher Fetcher
	store   Store
	workers int
	log     zerolog.Logger
}

// NewEngine creates an Engine. workers bounds concurrent downloads; 1
// gives fully sequential behavior.
func NewEngine(fetcher Fetcher, store Store, workers int, logger zerolog.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{fetcher: fetcher, store: store, workers: workers, log: logger}
}

// Run performs one synchronization pass.
//
// Per-candidate remote failures (missing extension, not found, transport
// errors) drop that candidate and the run continues. Local store failures
// abort the run; pruning never happens after an abort, and an aborted
// download never leaves a partial file under its identifier.
func (e *Engine) Run(ctx context.Context, candidates []Candidate) (Result, error) {
	existing, err := e.store.List()
	if err != nil {
		return Result{}, err
	}

	// Reconcile: collapse candidates into the wanted identifier set,
	// keeping the first-seen URL per identifier.
	wanted := make(map[string]string, len(candidates))
	var order []string
	for _, c := range candidates {
		id, err := IdentifierFor(c.ImageURL)
		if err != nil {
			e.log.Debug().Str("url", c.ImageURL).Err(err).Msg("dropping candidate")
			continue
		}
		if _, ok := wanted[id]; ok {
			continue
		}
		wanted[id] = c.ImageURL
		order = append(order, id)
	}

	result := Result{
		Written: make(map[string]bool),
		Skipped: make(map[string]bool),
		Pruned:  make(map[string]bool),
	}

	// Download misses. Distinct identifiers are independent, so they can
	// run concurrently; pruning waits for every attempt to resolve.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, id := range order {
		if existing[id] {
			result.Skipped[id] = true
			e.log.Debug().Str("id", id).Msg("cache hit")
			continue
		}
		id := id
		imageURL := wanted[id]
		g.Go(func() error {
			data, err := e.fetcher.Fetch(gctx, imageURL)
			if err != nil {
				var fe *FetchError
				if errors.Is(err, ErrNotFound) || errors.As(err, &fe) {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					e.log.Warn().Str("id", id).Err(err).Msg("download failed, dropping candidate")
					return nil
				}
				return err
			}
			if err := e.store.Write(id, data); err != nil {
				return fmt.Errorf("storing %s: %w", id, err)
			}
			mu.Lock()
			result.Written[id] = true
			mu.Unlock()
			e.log.Debug().Str("id", id).Str("url", imageURL).Msg("downloaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Prune: everything on disk that the current run no longer wants.
	for id := range existing {
		if _, ok := wanted[id]; ok {
			continue
		}
		if err := e.store.Delete(id); err != nil {
			return Result{}, err
		}
		result.Pruned[id] = true
		e.log.Debug().Str("id", id).Msg("pruned stale entry")
	}

	e.log.Info().
		Int("written", len(result.Written)).
		Int("skipped", len(result.Skipped)).
		Int("pruned", len(result.Pruned)).
		Msg("sync run complete")
	return result, nil
}
