package urlencoded

import (
	"strings"

	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/internal/hexconv"
)

// Decode translates percent-escaped sequences into their true form and
// pluses into spaces. The input is returned untouched when it contains
// neither.
func Decode(src string) (string, error) {
	if !strings.ContainsAny(src, "%+") {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i >= len(src)-2 {
				return "", status.ErrURLDecoding
			}

			hi, lo := hexconv.Halfbyte[src[i+1]], hexconv.Halfbyte[src[i+2]]
			if hi|lo > 0x0f {
				return "", status.ErrURLDecoding
			}

			b.WriteByte(hi<<4 | lo)
			i += 2
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}
