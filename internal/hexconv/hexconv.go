package hexconv

// Halfbyte maps a character to the value of the hex digit it represents.
// Entries for characters that aren't hex digits hold 0xff, which keeps the
// `a|b > 0x0f` validity check working.
var Halfbyte = [256]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
	'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
	'a': 0xa, 'b': 0xb, 'c': 0xc, 'd': 0xd, 'e': 0xe, 'f': 0xf,
	'A': 0xA, 'B': 0xB, 'C': 0xC, 'D': 0xD, 'E': 0xE, 'F': 0xF,
}

func init() {
	for i := range Halfbyte {
		if !isHexDigit(byte(i)) {
			Halfbyte[i] = 0xff
		}
	}
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}
