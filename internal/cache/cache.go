// Package cache stores serialized interpretation lattices keyed by document
// content, so re-analyzing an unchanged document is a lookup.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching analysis results.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the document ID, its content and the analysis
// settings fingerprint. Changing an override table or the register must never
// serve a stale graph.
func Key(docID string, content []byte, settings string) string {
	h := sha256.New()
	h.Write([]byte(docID))
	h.Write([]byte{0})
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(settings))
	return "semograph:v1:" + hex.EncodeToString(h.Sum(nil))
}
