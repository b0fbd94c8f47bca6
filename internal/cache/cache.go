// Package cache provides a pluggable result cache keyed by calculation input,
// so repeated solves of the same scenario skip the engine entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ResultCache stores serialized calculation reports by key. Implementations
// must be safe for concurrent use.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Key derives a stable cache key from any JSON-serializable input.
func Key(input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "calc:" + hex.EncodeToString(sum[:]), nil
}
