// Package http implements the HTTP handlers of the dashboard API. It is a
// thin layer between transport and the service packages: handlers bind and
// validate query parameters, call one service method, and render the result
// as JSON or as a file download.
//
// Every handler exposes a Routes() chi.Router so the application can mount
// it under its API prefix. Errors flow through the shared RFC 7807 error
// handler, so every failure body is an application/problem+json document.
//
// The dashboard and export routes share one filter contract: genres is a
// comma separated list matched by intersection, year_min and year_max are
// inclusive bounds that default to the dataset's own range when omitted.
package http
