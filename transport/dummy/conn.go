package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is an in-memory net.Conn replaying a pre-recorded stream.
type Conn struct {
	Data    []byte
	Written []byte
	chunk   int
}

func NewConn(data []byte) *Conn {
	return &Conn{Data: data}
}

// NewChunkedConn returns a Conn serving at most chunk bytes per Read.
func NewChunkedConn(data []byte, chunk int) *Conn {
	return &Conn{Data: data, chunk: chunk}
}

func (c *Conn) Read(p []byte) (int, error) {
	if len(c.Data) == 0 {
		return 0, io.EOF
	}

	if c.chunk > 0 && len(p) > c.chunk {
		p = p[:c.chunk]
	}

	n := copy(p, c.Data)
	c.Data = c.Data[n:]

	return n, nil
}

func (c *Conn) Write(p []byte) (int, error) {
	c.Written = append(c.Written, p...)
	return len(p), nil
}

func (c *Conn) Close() error {
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 43251}
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
