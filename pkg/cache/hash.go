package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "prefix:sha256(parts)" key. Hashing the JSON
// encoding of the parts keeps keys printable no matter what the inputs
// contain.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the full 64-character hex SHA-256 of data. Full-length
// hashes rule out collisions between documents.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
