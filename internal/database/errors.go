// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/courtside/internal/logging"
)

var (
	// ErrStoreUnavailable is returned while the circuit breaker is open.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrColumnMissing is returned by typed accessors when a result lacks a
	// required column or holds a value of the wrong type.
	ErrColumnMissing = errors.New("column missing")
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
