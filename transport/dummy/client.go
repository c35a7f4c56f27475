package dummy

import (
	"bytes"
	"io"
	"net"
)

// Client is an in-memory transport.Client fed with a pre-recorded stream.
// Written data is accumulated and can be inspected after the fact.
type Client struct {
	data    []byte
	written []byte
	remote  net.Addr
	local   net.Addr
	chunk   int
}

func NewClient(data []byte) *Client {
	return &Client{
		data:   data,
		remote: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 43251},
		local:  &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080},
	}
}

// NewChunkedClient serves the stream at most chunk bytes per Read call,
// simulating a slow peer.
func NewChunkedClient(data []byte, chunk int) *Client {
	client := NewClient(data)
	client.chunk = chunk

	return client
}

// NewNopClient returns a client whose stream is already at its end.
func NewNopClient() *Client {
	return NewClient(nil)
}

func (c *Client) ReadLine() (string, error) {
	if len(c.data) == 0 {
		return "", io.EOF
	}

	lf := bytes.IndexByte(c.data, '\n')
	if lf == -1 {
		line := c.data
		c.data = nil

		return string(trimCR(line)), nil
	}

	line := c.data[:lf]
	c.data = c.data[lf+1:]

	return string(trimCR(line)), nil
}

func (c *Client) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	if c.chunk > 0 && len(p) > c.chunk {
		p = p[:c.chunk]
	}

	n := copy(p, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)
	return len(p), nil
}

// Written exposes everything sent through the client so far.
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Conn() net.Conn {
	return nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Local() net.Addr {
	return c.local
}

func (c *Client) Close() error {
	return nil
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}

	return line
}
