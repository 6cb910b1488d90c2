// Package app provides application initialization and lifecycle management.
// It wires configuration, logging, OpenTelemetry, the service layer and the
// HTTP router together at startup.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize logging and observability
//	3. Initialize the dataset, dashboard and health services
//	4. Set up HTTP handlers and middleware
//	5. Configure and start the HTTP server
//	6. Warm the dataset in the background
//
// # Usage
//
// The main entry point is typically:
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// Run handles SIGINT and SIGTERM, drains active requests within the
// configured shutdown timeout and flushes the OpenTelemetry providers.
//
// All initialization errors are returned to the caller; the package never
// calls os.Exit() directly.
package app
