package http

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/utils/uf"
	"github.com/wisp-web/wisp/config"
	"github.com/wisp-web/wisp/http/cookie"
	"github.com/wisp-web/wisp/http/headers"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/internal/address"
	"github.com/wisp-web/wisp/internal/qparams"
	"github.com/wisp-web/wisp/kv"
	"github.com/wisp-web/wisp/transport"
	"github.com/wisp-web/wisp/wlog"
)

// AliasResolver maps a raw request path to the registered alias serving it.
// The registry behind it is owned by the container, not by the request.
type AliasResolver interface {
	Resolve(path string) (alias string, found bool)
}

// bodyConsumption is the two-way gate over the body accessors: once the
// body left the request through one family of accessors, the other family
// is locked out for the rest of the request's life.
type bodyConsumption uint8

const (
	bodyUnconsumed bodyConsumption = iota
	bodyConsumedStream
	bodyConsumedText
)

// Request represents a single HTTP request, parsed from the connection's
// byte stream. The request line and headers are populated eagerly at
// construction; the body, parameters, cookies and route binding are
// computed on first access and memoized. One goroutine owns the request
// end-to-end, so no field is synchronized.
type Request struct {
	// Method is the request method verbatim, e.g. "GET".
	Method string
	// Target is the request target exactly as it appeared on the request
	// line, before the host/path/query split.
	Target string
	// Host is the host component of an absolute-form target. Empty for
	// relative-form targets.
	Host string
	// Path is the target with the host and query stripped. Not
	// percent-decoded.
	Path string
	// Query is everything after the first question mark of the path.
	// Meaningful only when HasQuery is set.
	Query string
	// HasQuery distinguishes an empty query string from an absent one.
	HasQuery bool
	// Version is the protocol version verbatim, e.g. "HTTP/1.1".
	Version string
	// Headers is the request's header table.
	Headers *headers.Table

	client   transport.Client
	resolver AliasResolver
	log      wlog.Logger
	cfg      *config.Config

	// body is nil until read. A non-nil zero-length slice means "already
	// read, empty", which keeps repeated accesses from touching the stream.
	body        []byte
	consumption bodyConsumption

	params       *kv.Storage
	cookies      []cookie.Cookie
	cookiesKnown bool
	attributes   map[string]any
	alias        string
}

func NewRequest(cfg *config.Config, client transport.Client, resolver AliasResolver, log wlog.Logger) *Request {
	return &Request{
		Headers:  headers.NewPrealloc(cfg.Headers.Prealloc),
		client:   client,
		resolver: resolver,
		log:      log,
		cfg:      cfg,
	}
}

// QueryString returns the raw query string. found is false when the target
// carried no question mark at all.
func (r *Request) QueryString() (query string, found bool) {
	return r.Query, r.HasQuery
}

// ContentLength returns the integer value of the Content-Length header.
// A missing or non-numeric header is treated as 0.
func (r *Request) ContentLength() int {
	n, _ := r.Headers.Int("content-length")
	return n
}

// ContentType returns the Content-Type header value, or an empty string.
func (r *Request) ContentType() string {
	return r.Headers.ValueOr("content-type", "")
}

// Body returns the raw body bytes, reading them from the stream if they
// weren't read yet. Fails with an illegal-state error if the body has
// already been consumed through Text. The returned slice is the request's
// own; repeated calls return the same one without touching the stream.
func (r *Request) Body() ([]byte, error) {
	if r.consumption == bodyConsumedText {
		return nil, status.ErrTextTaken
	}

	if err := r.readBody(); err != nil {
		return nil, err
	}

	r.consumption = bodyConsumedStream
	return r.body, nil
}

// Text returns the body decoded as text, reading it from the stream if it
// wasn't read yet. Fails with an illegal-state error if the body has
// already been consumed through Body.
func (r *Request) Text() (string, error) {
	if r.consumption == bodyConsumedStream {
		return "", status.ErrStreamTaken
	}

	if err := r.readBody(); err != nil {
		return "", err
	}

	r.consumption = bodyConsumedText
	return uf.B2S(r.body), nil
}

// readBody performs the exact-length read of the declared byte count. It
// runs at most once per request: afterwards body is non-nil, possibly
// zero-length.
func (r *Request) readBody() error {
	if r.body != nil {
		return nil
	}

	length := r.ContentLength()
	if length <= 0 {
		r.body = []byte{}
		return nil
	}

	buff := make([]byte, length)

	for read := 0; read < length; {
		n, err := r.client.Read(buff[read:])
		read += n

		if err != nil {
			if errors.Is(err, io.EOF) {
				// the peer hung up mid-body: the request can never be
				// completed, so the connection must be aborted
				return status.ErrIncompleteBody
			}

			return err
		}
	}

	r.body = buff
	return nil
}

// Param returns the decoded parameter value for the key. ok is false when
// the key is absent or parameter decoding failed altogether.
func (r *Request) Param(key string) (value string, ok bool) {
	params, ok := r.Params()
	if !ok {
		return "", false
	}

	return params.Get(key)
}

// ParamNames returns the keys of all decoded parameters.
func (r *Request) ParamNames() []string {
	params, ok := r.Params()
	if !ok {
		return nil
	}

	return params.Keys()
}

// Params returns the merged query-string and body parameters. The mapping
// is built once: query pairs are inserted first, body pairs (if the body
// has been read by that moment) second, so on key collisions the body's
// value wins. A decoding failure is logged and reported as ok=false with
// no partial results; the mapping stays unbuilt, so a later call retries.
func (r *Request) Params() (params *kv.Storage, ok bool) {
	if r.params == nil {
		params, err := r.buildParams()
		if err != nil {
			r.log.Log(wlog.LevelError, "failed to parse request parameters", err)
			return nil, false
		}

		r.params = params
	}

	return r.params, true
}

func (r *Request) buildParams() (*kv.Storage, error) {
	params := kv.NewPrealloc(r.cfg.Params.Prealloc)

	if r.HasQuery && len(r.Query) > 0 {
		if err := qparams.Parse(r.Query, params); err != nil {
			return nil, err
		}
	}

	if r.body != nil {
		if err := qparams.Parse(uf.B2S(r.body), params); err != nil {
			return nil, err
		}
	}

	return params, nil
}

// Cookies returns the cookies of the Cookie header. An absent header
// yields nil; a present header always yields a non-nil slice, even if
// every segment of it was malformed. The result is memoized.
func (r *Request) Cookies() []cookie.Cookie {
	if !r.cookiesKnown {
		if header, found := r.Headers.Value("cookie"); found {
			r.cookies = cookie.Parse(header)
		}

		r.cookiesKnown = true
	}

	return r.cookies
}

// Attribute returns a free-form attribute previously stored on the request.
func (r *Request) Attribute(key string) (value any, found bool) {
	value, found = r.attributes[key]
	return value, found
}

// SetAttribute stores a free-form attribute on the request.
func (r *Request) SetAttribute(key string, value any) {
	if r.attributes == nil {
		r.attributes = make(map[string]any)
	}

	r.attributes[key] = value
}

// RemoveAttribute deletes a free-form attribute.
func (r *Request) RemoveAttribute(key string) {
	delete(r.attributes, key)
}

// AttributeNames returns the keys of all stored attributes, unordered.
func (r *Request) AttributeNames() []string {
	if len(r.attributes) == 0 {
		return nil
	}

	names := make([]string, 0, len(r.attributes))
	for name := range r.attributes {
		names = append(names, name)
	}

	return names
}

// Alias returns the registered alias matched against the request path.
// The result is memoized. By the time a request reaches routing the
// container has already guaranteed a handler for its path exists, so the
// absence of a match is an illegal-state fault, not a lookup miss.
func (r *Request) Alias() (string, error) {
	if len(r.alias) == 0 {
		alias, found := r.resolver.Resolve(r.Path)
		if !found {
			return "", status.ErrNoAlias
		}

		r.alias = alias
	}

	return r.alias, nil
}

// PathInfo returns the remainder of the path after the matched alias. An
// empty string means there is no remainder; any present remainder is
// necessarily non-empty.
func (r *Request) PathInfo() (string, error) {
	alias, err := r.Alias()
	if err != nil {
		return "", err
	}

	if len(alias) == 0 || len(r.Path) <= len(alias) {
		return "", nil
	}

	return r.Path[len(alias):], nil
}

// Remote returns the peer's address.
func (r *Request) Remote() net.Addr {
	return r.client.Remote()
}

// RemotePort returns the peer's port, or 0 if unknown.
func (r *Request) RemotePort() int {
	return address.Port(r.client.Remote())
}

// Local returns the local end's address.
func (r *Request) Local() net.Addr {
	return r.client.Local()
}

// LocalPort returns the local end's port, or 0 if unknown.
func (r *Request) LocalPort() int {
	return address.Port(r.client.Local())
}

// Session is intentionally out of scope.
func (r *Request) Session() (any, error) {
	return nil, status.ErrSessionsUnsupported
}

// RealPath is intentionally out of scope.
func (r *Request) RealPath(string) (string, error) {
	return "", status.ErrRealPathUnsupported
}

// SetCharacterEncoding is intentionally out of scope.
func (r *Request) SetCharacterEncoding(string) error {
	return status.ErrEncodingUnsupported
}
