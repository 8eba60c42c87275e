// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

// Error codes of the API envelope
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeRenderFailed       = "RENDER_ERROR"
	ErrCodeRequestCanceled    = "REQUEST_CANCELED"
)

// StatusClientClosedRequest is written when the client disconnects before the
// store answers, so access logs and metrics never record the request as a 200.
const StatusClientClosedRequest = 499

// Generic messages. Store error text never reaches clients.
const (
	msgDatabaseError      = "Failed to load data"
	msgServiceUnavailable = "Data store temporarily unavailable"
	msgNoChartData        = "No data to chart"
	msgRequestCanceled    = "Request canceled"
)
