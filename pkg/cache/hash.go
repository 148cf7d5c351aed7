package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKeyOpts are the inputs besides the document that determine a layout.
type LayoutKeyOpts struct {
	Engine string `json:"engine"`
	// Options is the engine's option struct. It is hashed through its JSON
	// encoding, so fields tagged json:"-" do not affect the key.
	Options any `json:"options"`
}

// LayoutKey returns the key of the layout of the document with hash docHash.
func LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}
