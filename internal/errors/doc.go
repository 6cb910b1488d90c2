// Package errors provides structured API errors and RFC 7807 Problem
// Details responses for the HTTP layer. APIError is the internal error
// currency; ErrorHandler converts any error reaching transport into a
// problem+json response with a trace ID extension.
package errors
