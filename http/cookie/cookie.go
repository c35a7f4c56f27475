package cookie

import "strings"

// Cookie is a single name/value pair received from a user-agent. Attributes
// like Path or Expires belong to Set-Cookie and are out of scope here.
type Cookie struct {
	Name  string
	Value string
}

func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

// Parse splits a Cookie header value into discrete cookies. Segments are
// separated by semicolons; each must consist of a name and a value joined
// by a single equality sign. Malformed segments are skipped without an
// error. The returned slice is never nil, so an empty result stays
// distinguishable from an absent header.
func Parse(header string) []Cookie {
	cookies := make([]Cookie, 0, strings.Count(header, ";")+1)

	for _, segment := range strings.Split(header, ";") {
		name, value, ok := splitPair(segment)
		if !ok {
			continue
		}

		cookies = append(cookies, Cookie{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	return cookies
}

// splitPair accepts only segments of exactly two fields around equality
// signs, so "bad", "a=" and "a=b=c" are all rejected.
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
