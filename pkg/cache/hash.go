package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key of the form prefix:sha256(parts).
// Parts are JSON-encoded, so option structs key on their field values.
func hashKey(prefix string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(raw))
}

// Hash returns the full 64-character hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
