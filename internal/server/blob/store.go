// Package blob is the object-storage gateway. It stores opaque binary
// payloads under caller-chosen keys and issues time-limited signed
// retrieval URLs.
package blob

import (
	"context"
	"time"
)

// DefaultSignedURLTTL is how long a signed download URL stays valid when
// the caller does not specify a ttl.
const DefaultSignedURLTTL = 300 * time.Second

// Store abstracts the object-storage backend.
//
// Keys are caller-chosen; writing an existing key silently overwrites it.
type Store interface {
	// Put uploads body under key and returns the public location URL.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	// SignedGetURL returns a time-limited URL granting read access to key.
	SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
