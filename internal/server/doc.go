// Package server runs the fake expense API over HTTP.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
