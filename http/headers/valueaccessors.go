package headers

import (
	"strconv"
	"time"

	"github.com/wisp-web/wisp/http/status"
)

// The formats user-agents are known to send dates in, most common first.
var dateFormats = []string{
	time.RFC1123,
	"Monday, 02-Jan-06 15:04:05 MST",
	time.ANSIC,
}

// Int parses the value of the key as a decimal integer. A missing key or a
// value that doesn't parse are both reported as not found, so callers that
// rely on numeric headers (e.g. Content-Length) fall back to their zero
// defaults instead of failing.
func (t *Table) Int(key string) (int, bool) {
	v, found := t.Value(key)
	if !found {
		return 0, false
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Date parses the value of the key as an HTTP date. A missing key is
// reported via found=false with no error; a present but unparsable value
// yields status.ErrBadDate.
func (t *Table) Date(key string) (ts time.Time, found bool, err error) {
	v, found := t.Value(key)
	if !found {
		return time.Time{}, false, nil
	}

	for _, layout := range dateFormats {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, true, nil
		}
	}

	return time.Time{}, true, status.ErrBadDate
}
