// Package timeouts defines shared timeout constants used across the console.
// Centralizing these values prevents drift between the HTTP surface and the
// backend API client and makes the durations discoverable.
package timeouts

import "time"

// APIRequest caps the time allowed for a single backend API request issued
// by the console.
const APIRequest = 10 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
