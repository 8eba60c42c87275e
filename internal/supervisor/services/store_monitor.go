// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/metrics"
)

const (
	defaultMonitorInterval = 30 * time.Second
	defaultPingTimeout     = 5 * time.Second
)

// StorePinger is the part of the rankings store the monitor needs.
// *database.DB satisfies it.
type StorePinger interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// StoreMonitorService pings the store on an interval, publishes the
// courtside_store_up gauge and logs when the store goes down or recovers.
type StoreMonitorService struct {
	store       StorePinger
	interval    time.Duration
	pingTimeout time.Duration
	name        string
	log         zerolog.Logger

	checks atomic.Int64
	up     atomic.Bool
	seen   atomic.Bool
}

// NewStoreMonitorService creates a monitor. A non-positive interval means 30s.
func NewStoreMonitorService(store StorePinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	pingTimeout := defaultPingTimeout
	if interval < pingTimeout {
		pingTimeout = interval
	}
	const name = "store-monitor"
	return &StoreMonitorService{
		store:       store,
		interval:    interval,
		pingTimeout: pingTimeout,
		name:        name,
		log:         logging.WithComponent(name),
	}
}

// Serve implements suture.Service. The first check runs immediately.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	up := err == nil

	s.checks.Add(1)
	metrics.SetStoreUp(up)

	wasUp := s.up.Swap(up)
	first := !s.seen.Swap(true)
	switch {
	case !up && (first || wasUp):
		s.log.Warn().Err(err).
			Str("circuit_breaker", s.store.BreakerState()).
			Msg("Rankings store unreachable")
	case up && !first && !wasUp:
		s.log.Info().Msg("Rankings store reachable again")
	}
}

// Up reports the result of the most recent check.
func (s *StoreMonitorService) Up() bool {
	return s.up.Load()
}

// Checks returns how many checks have completed.
func (s *StoreMonitorService) Checks() int64 {
	return s.checks.Load()
}

// String implements fmt.Stringer; suture uses it in its events.
func (s *StoreMonitorService) String() string {
	return s.name
}
