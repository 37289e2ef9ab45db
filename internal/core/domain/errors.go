package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidEdge is returned when a mutation names an empty endpoint or a self-loop.
	ErrInvalidEdge = zerr.New("invalid connection")

	// ErrSourceUnreadable is returned when the source document is missing, locked, or not valid JSON.
	ErrSourceUnreadable = zerr.New("source document unreadable")

	// ErrSourceMalformed is returned when the source document is valid JSON with the wrong shape.
	ErrSourceMalformed = zerr.New("source document malformed")

	// ErrPersistFailed is returned when the source document cannot be written to durable storage.
	ErrPersistFailed = zerr.New("failed to persist source document")

	// ErrSourceEncodeFailed is returned when the source document cannot be encoded.
	ErrSourceEncodeFailed = zerr.New("failed to encode source document")

	// ErrMalformedRecord is returned for a single connection record that cannot be used.
	ErrMalformedRecord = zerr.New("malformed connection record")

	// ErrSnapshotEncodeFailed is returned when a snapshot body cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode snapshot")

	// ErrPlayerUnreadable is returned when the player file cannot be read or parsed.
	ErrPlayerUnreadable = zerr.New("player file unreadable")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrWatchFailed is returned when a file watch cannot be established.
	ErrWatchFailed = zerr.New("failed to watch file")

	// ErrServerFailed is returned when the HTTP server stops unexpectedly.
	ErrServerFailed = zerr.New("snapshot server failed")
)
