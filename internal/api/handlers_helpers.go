// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/courtside/internal/database"
	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/models"
	"github.com/tomtom215/courtside/internal/validation"
)

// sanitizeLogValue escapes control characters so request data cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSVG sends a rendered chart
func respondSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("ETag", generateETag(svg))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		logging.Error().Err(err).Msg("Failed to write SVG response")
	}
}

// generateETag creates an ETag from data using FNV-1a
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondData wraps data in a success envelope. trace, when non-nil, decides
// metadata.cached.
func respondData(w http.ResponseWriter, r *http.Request, start time.Time, trace *database.LoadTrace, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      trace.Cached(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondError sends an error envelope. err is logged, never returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.CtxErr(r.Context(), err).
			Str("code", sanitizeLogValue(apiErr.Code)).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: apiErr,
	})
}

// respondStoreError maps a store failure to 503 when the circuit breaker is
// rejecting calls, to 499 when the client canceled the request and to a
// generic 500 otherwise.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgServiceUnavailable, err)
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Str("path", sanitizeLogValue(r.URL.Path)).Msg("Request canceled")
		respondError(w, r, StatusClientClosedRequest, ErrCodeRequestCanceled, msgRequestCanceled, nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, msgDatabaseError, err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// paramParser reads integer query parameters, keeping the first failure.
type paramParser struct {
	r   *http.Request
	err *models.APIError
}

// Int returns the parameter, defaultValue when absent, or records a
// VALIDATION_ERROR when it is not an integer.
func (p *paramParser) Int(key string, defaultValue int) int {
	raw := strings.TrimSpace(p.r.URL.Query().Get(key))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		if p.err == nil {
			p.err = &models.APIError{
				Code:    ErrCodeValidation,
				Message: key + " must be an integer",
				Details: map[string]interface{}{"field": key, "value": raw},
			}
		}
		return 0
	}
	return v
}

// String returns the raw parameter.
func (p *paramParser) String(key string) string {
	return p.r.URL.Query().Get(key)
}
