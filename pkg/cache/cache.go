// Package cache provides pluggable storage for rendered diagram
// artifacts and uploaded documents.
//
// # Overview
//
// Rendering a document is deterministic: the same document bytes plus
// the same render options always produce the same artifact. That makes
// artifacts ideal cache entries, keyed by content hash. This package
// defines the [Cache] interface plus three backends:
//
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: Redis-backed, for the HTTP server
//   - [NullCache]: no-op, for tests and --no-cache runs
//
// # Keys
//
// A [Keyer] turns render inputs into cache keys. [DefaultKeyer]
// hashes every option that changes the output bytes, so a format or
// theme switch never serves stale artifacts. [ScopedKeyer] prefixes
// keys so a shared keyspace (a Redis instance serving several
// applications) stays partitioned.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(doc), cache.ArtifactKeyOpts{Format: "svg"})
//	if data, ok, err := c.Get(ctx, key); err == nil && ok {
//	    return data // cache hit
//	}
package cache

import (
	"context"
	"time"
)

// Cache is the interface all backends implement. A miss is not an
// error: Get reports presence through its second return value.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts captures every render input that changes the bytes of
// an artifact. Renders with equal document hashes and equal opts may
// share a cache entry.
type ArtifactKeyOpts struct {
	Format  string
	Theme   string
	Scale   float64
	Sheet   string
	NoColor bool
}

// Keyer builds cache keys. Implementations must produce identical keys
// for identical inputs across processes.
type Keyer interface {
	// DocumentKey identifies a stored document.
	DocumentKey(id string) string

	// ArtifactKey identifies a rendered artifact by document hash and
	// render options.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme shared by the CLI and server.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// DocumentKey returns "doc:{id}".
func (k *DefaultKeyer) DocumentKey(id string) string {
	return "doc:" + id
}

// ArtifactKey returns "artifact:{hash}" where the hash covers the
// document hash and all render options.
func (k *DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
