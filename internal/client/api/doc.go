// Package api is the gateway client for the job tracker REST API.
//
// It centralizes the concerns every call shares: bearer-credential
// attachment via a TokenSource, a per-request correlation id, uniform
// error-message extraction, and the cross-cutting 401 interceptor that
// tears down the session through a callback registered once at startup.
// Streamed AI endpoints deliver chunks to a caller-supplied sink in byte
// order and return the assembled text.
package api
