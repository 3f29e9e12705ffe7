package core

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-crypt/x/blake2b"
)

// HashContent generates a deterministic 64-bit digest of text content using
// BLAKE2b. Identical content always produces the same digest; the cache
// layer uses it for keying provider responses.
func HashContent(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// NormalizeName produces the dedup key for a candidate name: lowercased,
// punctuation stripped, whitespace collapsed to single spaces. Two names
// with the same key refer to the same person within one discovery call.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ProspectID derives an identifier from a normalized-name slug and a
// timestamp. The timestamp suffix keeps IDs unique across repeated
// discoveries of the same person; the ID is not a stable cross-request
// identity.
func ProspectID(name string, at time.Time) string {
	slug := strings.ReplaceAll(NormalizeName(name), " ", "-")
	if slug == "" {
		slug = "prospect"
	}
	return slug + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
