package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mager/cadence/cadence"
	"github.com/mager/cadence/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
	spot "github.com/zmb3/spotify/v2"
	"golang.org/x/sync/errgroup"
)

// Enrichment is the outcome of resolving a ranked list of Spotify IDs.
type Enrichment struct {
	Results    []cadence.Result
	Unresolved []cadence.Unresolved
}

// Enrich fetches metadata for ids and returns display records in the same
// order, collapsing tracks that share a title. Tracks that fail individually
// are reported in Unresolved. An error wrapping ErrEnrichmentUnavailable is
// returned when no track resolved and at least one failure points at the
// catalog rather than at the track, e.g. a timeout or a 5xx. If the caller's
// context ends first, its error is returned instead.
func (c *SpotifyClient) Enrich(ctx context.Context, ids []string) (Enrichment, error) {
	if len(ids) == 0 {
		return Enrichment{Results: []cadence.Result{}}, nil
	}

	if _, err := c.tokens.Token(); err != nil {
		return Enrichment{}, c.unavailable(fmt.Errorf("client credentials: %w", err))
	}
	if c.breaker.State() == gobreaker.StateOpen {
		return Enrichment{}, c.unavailable(gobreaker.ErrOpenState)
	}

	tracks, errs := c.fetchAll(ctx, ids)
	if err := ctx.Err(); err != nil {
		return Enrichment{}, fmt.Errorf("enrich %d tracks: %w", len(ids), err)
	}

	var out Enrichment
	results := make([]cadence.Result, 0, len(ids))
	for i, id := range ids {
		if errs[i] != nil {
			metrics.CatalogFetches.WithLabelValues("failed").Inc()
			reason := unresolvedReason(errs[i])
			c.log.Warnw("Failed to fetch track", "spotify_id", id, "reason", reason, "error", errs[i])
			out.Unresolved = append(out.Unresolved, cadence.Unresolved{SpotifyID: id, Reason: reason})
			continue
		}
		metrics.CatalogFetches.WithLabelValues("resolved").Inc()
		results = append(results, toResult(tracks[i]))
	}

	if len(results) == 0 && catalogFailed(errs) {
		return Enrichment{}, c.unavailable(fmt.Errorf("all %d track fetches failed: %w", len(ids), errors.Join(errs...)))
	}

	out.Results = DedupByTitle(results)
	return out, nil
}

// fetchAll fetches every id concurrently. Slot i of each returned slice
// belongs to ids[i], whatever order the fetches complete in.
func (c *SpotifyClient) fetchAll(ctx context.Context, ids []string) ([]*spot.FullTrack, []error) {
	tracks := make([]*spot.FullTrack, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			tracks[i], errs[i] = c.fetch(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return tracks, errs
}

func (c *SpotifyClient) fetch(parent context.Context, id string) (*spot.FullTrack, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		if parent.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, parent.Err())
		}
		// Wait fails early when the next slot is past the fetch deadline.
		return nil, fmt.Errorf("rate limit: %w: %w", context.DeadlineExceeded, err)
	}

	track, err := c.breaker.Execute(func() (*spot.FullTrack, error) {
		t, err := c.Client.GetTrack(ctx, ExtractID(id))
		if err != nil && parent.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, err)
		}
		return t, err
	})
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, fmt.Errorf("track %s: empty response", id)
	}
	return track, nil
}

func (c *SpotifyClient) unavailable(cause error) error {
	metrics.EnrichmentUnavailable.Inc()
	c.log.Errorw("Spotify enrichment unavailable", "error", cause)
	return &UnavailableError{Cause: cause}
}

// DedupByTitle keeps the first result for each case-insensitive track name.
func DedupByTitle(results []cadence.Result) []cadence.Result {
	seen := make(map[string]struct{}, len(results))
	out := make([]cadence.Result, 0, len(results))
	for _, r := range results {
		key := strings.ToLower(r.TrackName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func toResult(t *spot.FullTrack) cadence.Result {
	return cadence.Result{
		TrackName: t.Name,
		AlbumName: t.Album.Name,
		Artists:   GetFirstArtist(t.Artists),
	}
}

// catalogFailed reports whether any fetch failed for a reason other than
// the catalog rejecting that one track.
func catalogFailed(errs []error) bool {
	for _, err := range errs {
		if err != nil && !isClientError(err) {
			return true
		}
	}
	return false
}

func unresolvedReason(err error) string {
	var se spot.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return cadence.ReasonTimeout
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return cadence.ReasonCircuitOpen
	case errors.As(err, &se) && se.Status == http.StatusNotFound:
		return cadence.ReasonNotFound
	default:
		return cadence.ReasonError
	}
}
