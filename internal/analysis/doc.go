// Package analysis is the HTTP client for the password analysis service.
//
// The service exposes two endpoints relative to a configurable base URL:
//
//	POST /check_password   {"password": "..."}  ->  {"strength", "entropy_bits", "score", "feedback"}
//	GET  /health
//
// Responses are validated at this boundary. A body that is not JSON is a
// parse error; JSON that does not match the result schema (missing fields,
// wrong types, null feedback entries) is a validation error. Callers only
// ever see a fully populated Result or a typed *Error.
//
// Every failure is reported as an *Error carrying an ErrorType, so callers
// can branch with the Is* predicates and show ShortMessage and
// TroubleshootingHints to the user. The client never retries and never logs
// the password.
package analysis
