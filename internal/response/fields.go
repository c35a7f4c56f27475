package response

import (
	"github.com/wisp-web/wisp/http/cookie"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/kv"
)

// Fields is the raw state of a response being built. It lives in a separate
// package so the serializer can reach it without cyclic imports.
type Fields struct {
	Code        status.Code
	Status      string
	ContentType string
	Headers     *kv.Storage
	Cookies     []cookie.Cookie
	Body        []byte
}
