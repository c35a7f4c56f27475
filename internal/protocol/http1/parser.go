package http1

import (
	"errors"
	"io"
	"strings"

	"github.com/wisp-web/wisp/config"
	"github.com/wisp-web/wisp/http"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/transport"
	"github.com/wisp-web/wisp/wlog"
)

// ParseRequest constructs a request from the client's stream: the request
// line and the whole header block are consumed eagerly, leaving the stream
// positioned at the first body byte. The body itself is left alone; the
// request reads it lazily.
func ParseRequest(
	cfg *config.Config, client transport.Client, resolver http.AliasResolver, log wlog.Logger,
) (*http.Request, error) {
	request := http.NewRequest(cfg, client, resolver, log)

	if err := parseRequestLine(request, client); err != nil {
		return nil, err
	}

	if err := parseHeaders(request, client); err != nil {
		return nil, err
	}

	return request, nil
}

// parseRequestLine splits the first line of the stream into exactly three
// whitespace-separated tokens and derives host, path and query from the
// target. The path is deliberately not percent-decoded here.
func parseRequestLine(request *http.Request, client transport.Client) error {
	line, err := client.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return status.ErrNoRequestLine
		}

		return err
	}

	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return status.ErrMalformedRequestLine
	}

	request.Method, request.Target, request.Version = tokens[0], tokens[1], tokens[2]

	uri := request.Target

	// a double slash marks an absolute-form target: the host lives between
	// it and the next slash
	if protoEnd := strings.Index(uri, "//"); protoEnd > 0 {
		pathBegin := strings.IndexByte(uri[protoEnd+2:], '/')
		if pathBegin == -1 {
			return status.ErrMalformedRequestLine
		}

		pathBegin += protoEnd + 2
		request.Host = uri[protoEnd+2 : pathBegin]
		uri = uri[pathBegin:]
	}

	if question := strings.IndexByte(uri, '?'); question > 0 {
		request.Query = uri[question+1:]
		request.HasQuery = true
		uri = uri[:question]
	}

	request.Path = uri
	return nil
}

// parseHeaders consumes lines until an empty line or the end of the
// stream. Lines without a colon at a positive index are silently ignored.
func parseHeaders(request *http.Request, client transport.Client) error {
	for {
		line, err := client.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if len(line) == 0 {
			return nil
		}

		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}

		request.Headers.Add(
			strings.TrimSpace(line[:colon]),
			strings.TrimSpace(line[colon+1:]),
		)
	}
}
