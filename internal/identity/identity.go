// Package identity allocates collision-resistant record identifiers and
// parses the shelf-scoped references used to address them.
//
// Identifiers are 64-character hex SHA-256 digests. Users address records by
// any unique leading prefix; listings display the first ShortLen characters.
// A membership is addressed relative to its shelf as "<shelf>.<prefix>",
// while a bare prefix addresses the global catalog.
package identity

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortLen is the number of identifier characters shown in listings. Any
// prefix, shorter or longer, is accepted for resolution.
const ShortLen = 10

// Allocate derives a fresh identifier from the seed material. The current
// time and a random UUID are mixed in so identical seeds still produce
// distinct identifiers.
func Allocate(seed ...string) string {
	h := sha256.New()
	for _, part := range seed {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	var now [8]byte
	binary.BigEndian.PutUint64(now[:], uint64(time.Now().UnixNano()))
	h.Write(now[:])
	h.Write([]byte(uuid.NewString()))
	return hex.EncodeToString(h.Sum(nil))
}

// Short returns the display form of a full identifier.
func Short(id string) string {
	if len(id) <= ShortLen {
		return id
	}
	return id[:ShortLen]
}

// Ref is a parsed record reference. Shelf is empty for global catalog
// references.
type Ref struct {
	Shelf  string
	Prefix string
}

// Scoped reports whether the reference addresses a shelf membership rather
// than the global catalog.
func (r Ref) Scoped() bool {
	return r.Shelf != ""
}

// ParseRef splits a user-supplied reference into shelf scope and identifier
// prefix. The split happens at the last dot: identifiers are hex and can
// never contain one, while shelf names may. A reference without a dot
// addresses the global catalog.
func ParseRef(raw string) (Ref, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ref{}, false
	}
	idx := strings.LastIndexByte(raw, '.')
	if idx < 0 {
		if !validPrefix(raw) {
			return Ref{}, false
		}
		return Ref{Prefix: strings.ToLower(raw)}, true
	}
	shelf, prefix := raw[:idx], raw[idx+1:]
	if shelf == "" || !validPrefix(prefix) {
		return Ref{}, false
	}
	return Ref{Shelf: shelf, Prefix: strings.ToLower(prefix)}, true
}

func validPrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
