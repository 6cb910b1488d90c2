// Package services implements the business logic layer between the HTTP
// handlers and the data pipeline.
//
// Three services make up the layer:
//
// DatasetService owns the clean movie table. It loads the two dataset files
// through the dataprocessing loader on first use and memoizes the result;
// every request afterwards reads the same immutable slice.
//
// DashboardService computes the dashboard view models. Each call resolves
// the caller's filter against the clean table and derives every aggregate
// from that one subset, so all tabs of a render cycle agree.
//
// HealthService answers liveness and readiness probes. Readiness reflects
// whether the dataset is resident or at least loadable.
//
// Services take context.Context on every operation and log through the
// injected slog logger.
package services
