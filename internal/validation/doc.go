// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package validation provides struct validation using go-playground/validator v10.
//
// Request parameters are bound into small structs in the api package and
// checked here before any SQL is built. The package wraps a thread-safe
// singleton validator that names fields by their `query` tag and lets a
// field override its message with a `msg` tag, so clients see the exact
// strings the API documents:
//
//	type scorerRequest struct {
//	    ScorerName string `query:"scorerName" validate:"notblank" msg:"scorerName query parameter is required."`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondValidationError(w, verr.Message())
//	    return
//	}
//
// # Tags
//
//   - required, notblank: parameter must be present and not whitespace
//   - oneof=a b c: enumerations such as the top-countries metric
//   - gte, lte, min, max: numeric and length bounds
//
// Fields without a msg tag get a generated message such as
// "metric must be one of: matches goals".
package validation
