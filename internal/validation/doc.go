// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata and is safe for concurrent use. Errors are translated into
// messages that name the query parameter the client sent, taken from the
// `query` struct tag:
//
//	type CompetitorsRequest struct {
//	    MinRank int    `query:"min_rank" validate:"gte=0,lte=10000"`
//	    MaxRank int    `query:"max_rank" validate:"omitempty,lte=10000,gtefield=MinRank"`
//	    Name    string `query:"name" validate:"max=100,printable"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	    // apiErr.Message == "max_rank must be greater than or equal to min_rank"
//	}
//
// # Custom tags
//
//   - printable: string contains no control characters
//
// # API error format
//
// A single failure reports the field, tag and value in Details. Several
// failures are joined into one message and listed under Details["fields"].
package validation
