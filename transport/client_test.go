package transport

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/transport/dummy"
)

func newTestClient(conn *dummy.Conn) Client {
	return NewClient(conn, 0, make([]byte, 16), 64)
}

func TestReadLine(t *testing.T) {
	t.Run("crlf and lf lines", func(t *testing.T) {
		client := newTestClient(dummy.NewConn([]byte("first\r\nsecond\nthird\r\n")))

		for _, want := range []string{"first", "second", "third"} {
			line, err := client.ReadLine()
			require.NoError(t, err)
			require.Equal(t, want, line)
		}

		_, err := client.ReadLine()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("empty line", func(t *testing.T) {
		client := newTestClient(dummy.NewConn([]byte("header\r\n\r\n")))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "header", line)

		line, err = client.ReadLine()
		require.NoError(t, err)
		require.Empty(t, line)
	})

	t.Run("line spanning multiple reads", func(t *testing.T) {
		client := newTestClient(dummy.NewChunkedConn([]byte("a pretty long line indeed\r\nnext"), 4))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "a pretty long line indeed", line)
	})

	t.Run("partial trailing line is returned before the EOF", func(t *testing.T) {
		client := newTestClient(dummy.NewConn([]byte("no line break here")))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "no line break here", line)

		_, err = client.ReadLine()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("too long line", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'a'
		}

		client := newTestClient(dummy.NewConn(append(long, '\n')))

		_, err := client.ReadLine()
		require.ErrorIs(t, err, status.ErrTooLongLine)
	})
}

func TestRead(t *testing.T) {
	t.Run("leftover bytes come first", func(t *testing.T) {
		client := newTestClient(dummy.NewConn([]byte("headers\r\nbody bytes")))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "headers", line)

		collected := make([]byte, 0, 10)
		buff := make([]byte, 10)

		for len(collected) < 10 {
			n, err := client.Read(buff)
			require.NoError(t, err)
			collected = append(collected, buff[:n]...)
		}

		require.Equal(t, "body bytes", string(collected))
	})

	t.Run("direct read from the connection", func(t *testing.T) {
		client := newTestClient(dummy.NewConn([]byte("raw")))

		buff := make([]byte, 3)
		n, err := client.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "raw", string(buff[:n]))

		_, err = client.Read(buff)
		require.ErrorIs(t, err, io.EOF)
	})
}
