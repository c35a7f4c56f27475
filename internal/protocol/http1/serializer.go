package http1

import (
	"strconv"

	"github.com/wisp-web/wisp/http"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/transport"
)

// Serializer renders responses onto the client's stream. Every response is
// terminal for its connection, therefore Connection: close is always
// advertised.
type Serializer struct {
	client transport.Client
	buff   []byte
}

func NewSerializer(client transport.Client, buff []byte) *Serializer {
	return &Serializer{
		client: client,
		buff:   buff,
	}
}

// Write serializes the response using the given protocol version and
// flushes it to the client.
func (s *Serializer) Write(version string, response *http.Response) error {
	fields := response.Expose()

	s.buff = append(s.buff[:0], version...)
	s.buff = append(s.buff, ' ')
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.buff = append(s.buff, ' ')

	if len(fields.Status) > 0 {
		s.buff = append(s.buff, fields.Status...)
	} else {
		s.buff = append(s.buff, status.Text(fields.Code)...)
	}

	s.crlf()

	if len(fields.ContentType) > 0 {
		s.appendHeader("Content-Type", fields.ContentType)
	}

	for _, pair := range fields.Headers.Expose() {
		s.appendHeader(pair.Key, pair.Value)
	}

	for _, c := range fields.Cookies {
		s.appendHeader("Set-Cookie", c.Name+"="+c.Value)
	}

	s.appendHeader("Content-Length", strconv.Itoa(len(fields.Body)))
	s.appendHeader("Connection", "close")
	s.crlf()
	s.buff = append(s.buff, fields.Body...)

	_, err := s.client.Write(s.buff)
	return err
}

func (s *Serializer) appendHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}
