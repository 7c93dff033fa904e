// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package models

// ErrorResponse is the JSON body returned by the HTTP layer on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is the JSON body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
