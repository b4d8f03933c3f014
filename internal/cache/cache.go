// Package cache stores extraction-service responses so re-reviewing the
// same report does not re-upload the document.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the storage interface shared by the memory, disk, and
// layered implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for one extraction request: the document bytes
// plus the form type and section category that shaped the response.
func Key(file []byte, formType, category string) string {
	h := sha256.New()
	h.Write(file)
	h.Write([]byte{0})
	h.Write([]byte(formType))
	h.Write([]byte{0})
	h.Write([]byte(category))
	return "appraisalint:v1:" + hex.EncodeToString(h.Sum(nil))
}
