package transport

import (
	"bytes"
	"io"
	"net"
	"time"

	"github.com/wisp-web/wisp/http/status"
)

// Client is the line-oriented stream a request is parsed from. ReadLine
// serves the request-line/header phase, Read the length-delimited body
// phase; both block until data arrives or the connection's read deadline
// expires.
type Client interface {
	ReadLine() (string, error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Conn() net.Conn
	Remote() net.Addr
	Local() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	line    []byte
	maxLine int
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte, maxLineSize int) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		maxLine: maxLineSize,
		timeout: timeout,
	}
}

// ReadLine returns the next LF-terminated line with the line break (and a
// preceding CR, if any) stripped. io.EOF is returned only if the stream
// ends before any byte of the line arrives; a partial trailing line is
// returned as-is, and the EOF surfaces on the next call.
func (c *client) ReadLine() (string, error) {
	c.line = c.line[:0]

	for {
		if len(c.pending) == 0 {
			if err := c.fill(); err != nil {
				if err == io.EOF && len(c.line) > 0 {
					return string(trimCR(c.line)), nil
				}

				return "", err
			}
		}

		lf := bytes.IndexByte(c.pending, '\n')
		if lf == -1 {
			c.line = append(c.line, c.pending...)
			c.pending = nil

			if len(c.line) > c.maxLine {
				return "", status.ErrTooLongLine
			}

			continue
		}

		c.line = append(c.line, c.pending[:lf]...)
		c.pending = c.pending[lf+1:]

		if len(c.line) > c.maxLine {
			return "", status.ErrTooLongLine
		}

		return string(trimCR(c.line)), nil
	}
}

// Read serves bytes left over from line reading first, then reads from the
// connection directly.
func (c *client) Read(p []byte) (int, error) {
	if len(c.pending) > 0 {
		n := copy(p, c.pending)
		c.pending = c.pending[n:]

		return n, nil
	}

	if err := c.deadline(); err != nil {
		return 0, err
	}

	return c.conn.Read(p)
}

func (c *client) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

func (c *client) Conn() net.Conn {
	return c.conn
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Local() net.Addr {
	return c.conn.LocalAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}

// fill reads the next non-empty chunk from the connection into pending.
func (c *client) fill() error {
	if err := c.deadline(); err != nil {
		return err
	}

	for {
		n, err := c.conn.Read(c.buff)
		if n > 0 {
			c.pending = c.buff[:n]
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (c *client) deadline() error {
	if c.timeout == 0 {
		return nil
	}

	return c.conn.SetReadDeadline(time.Now().Add(c.timeout))
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}

	return line
}
