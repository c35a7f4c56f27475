package http

import (
	"errors"

	json "github.com/json-iterator/go"
	"github.com/wisp-web/wisp/http/cookie"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/internal/response"
	"github.com/wisp-web/wisp/kv"
)

const preallocRespHeaders = 4

// Response is a chainable response builder. Every request is answered with
// exactly one of these and the connection is closed afterwards, as
// keep-alive is out of scope.
type Response struct {
	fields *response.Fields
}

// NewResponse returns a response with the code set to 200 OK.
func NewResponse() *Response {
	return &Response{
		fields: &response.Fields{
			Code:    status.OK,
			Headers: kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets the response code. The reason phrase is derived from it unless
// overridden via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom reason phrase. Clients generally ignore it, so
// there's rarely a reason to call this.
func (r *Response) Status(text string) *Response {
	r.fields.Status = text
	return r
}

// Header appends a response header.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Add(key, value)
	return r
}

// ContentType sets the Content-Type header value.
func (r *Response) ContentType(value string) *Response {
	r.fields.ContentType = value
	return r
}

// Cookie appends a Set-Cookie header carrying the name/value pair.
func (r *Response) Cookie(c cookie.Cookie) *Response {
	r.fields.Cookies = append(r.fields.Cookies, c)
	return r
}

// String sets the response body to a string.
func (r *Response) String(body string) *Response {
	return r.Bytes([]byte(body))
}

// Bytes sets the response body to raw bytes.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// JSON marshals the model into the response body and sets the content type
// accordingly. A marshalling failure degrades the response to 500.
func (r *Response) JSON(model any) *Response {
	data, err := json.Marshal(model)
	if err != nil {
		return r.Code(status.InternalServerError).Bytes(nil)
	}

	return r.ContentType("application/json").Bytes(data)
}

// Expose exposes the raw response state for the serializer.
func (r *Response) Expose() *response.Fields {
	return r.fields
}

// Error renders an error into a response. Errors carrying a status code
// keep it; everything else collapses into a generic 500.
func Error(err error) *Response {
	code := status.InternalServerError
	message := "internal server error"

	var e status.Error
	if errors.As(err, &e) && e.Code != 0 {
		code = e.Code
		message = e.Message
	}

	return NewResponse().Code(code).String(message)
}
