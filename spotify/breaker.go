package spotify

import (
	"errors"
	"net/http"
	"time"

	"github.com/mager/cadence/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

const breakerName = "spotify-tracks"

// newBreaker opens after 60% of at least 10 track fetches in a minute fail,
// and probes again after 30 seconds.
func newBreaker(log *zap.SugaredLogger) *gobreaker.CircuitBreaker[*spot.FullTrack] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*spot.FullTrack](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("Circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
		IsSuccessful: isSuccessful,
	})
}

// isSuccessful keeps client errors such as an unknown track ID, and callers
// that went away mid-fetch, from counting against the catalog's health.
func isSuccessful(err error) bool {
	return err == nil || isClientError(err) || errors.Is(err, errCallerDone)
}

// isClientError reports whether the catalog answered but rejected the
// request for this track alone.
func isClientError(err error) bool {
	var se spot.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Status >= http.StatusBadRequest && se.Status < http.StatusInternalServerError &&
		se.Status != http.StatusTooManyRequests && se.Status != http.StatusUnauthorized
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
