package qparams

import (
	"strings"

	"github.com/wisp-web/wisp/internal/urlencoded"
	"github.com/wisp-web/wisp/kv"
)

// Parse appends key=value pairs of an urlencoded string (a query string or
// an urlencoded body) into the storage. Segments are separated by
// ampersands; any segment not consisting of exactly two fields around
// equality signs is discarded without an error.
//
// Keys are trimmed and percent-decoded. Values are trimmed but deliberately
// left encoded: the asymmetry is an inherited, documented contract, not an
// oversight to be fixed. See the tests pinning it down.
//
// Insertion uses last-write-wins semantics, so pairs parsed later (the
// body) shadow pairs parsed earlier (the query string) on key collisions.
func Parse(data string, into *kv.Storage) error {
	for _, segment := range strings.Split(data, "&") {
		key, value, ok := splitPair(segment)
		if !ok {
			continue
		}

		decoded, err := urlencoded.Decode(strings.TrimSpace(key))
		if err != nil {
			return err
		}

		into.Set(decoded, strings.TrimSpace(value))
	}

	return nil
}

// splitPair accepts only segments of exactly two fields, so "flag",
// "a=" and "a=b=c" are all discarded.
func splitPair(segment string) (key, value string, ok bool) {
	parts := strings.Split(segment, "=")

	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
