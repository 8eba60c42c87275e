// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/metrics"
)

// storeBreakerName labels the store breaker in logs and metrics.
const storeBreakerName = "store"

// newStoreBreaker builds the circuit breaker guarding store queries.
// It opens once at least MinRequests were made in the current interval and
// the failure ratio reaches FailureRatio. A nil cfg uses the config defaults.
func newStoreBreaker(cfg *config.BreakerConfig) *gobreaker.CircuitBreaker[*Table] {
	settings := config.BreakerConfig{
		MaxRequests:  3,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
	if cfg != nil {
		settings = *cfg
	}

	metrics.CircuitBreakerState.WithLabelValues(storeBreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(storeBreakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*Table](gobreaker.Settings{
		Name:        storeBreakerName,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening store circuit")
			}
			return shouldTrip
		},

		// A caller giving up is not a store failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// execute runs fn through the breaker. Rejections are reported as ErrStoreUnavailable.
func (db *DB) execute(fn func() (*Table, error)) (*Table, error) {
	result, err := db.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(storeBreakerName, "rejected").Inc()
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(storeBreakerName, "failure").Inc()
		counts := db.breaker.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(storeBreakerName).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(storeBreakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(storeBreakerName).Set(0)
	return result, nil
}

// BreakerState returns the store circuit breaker state as "closed", "half-open" or "open".
func (db *DB) BreakerState() string {
	return stateToString(db.breaker.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
// Breaker states as reported by BreakerState
const (
	BreakerClosed   = "closed"
	BreakerHalfOpen = "half-open"
	BreakerOpen     = "open"
)

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return BreakerClosed
	case gobreaker.StateHalfOpen:
		return BreakerHalfOpen
	case gobreaker.StateOpen:
		return BreakerOpen
	default:
		return "unknown"
	}
}
