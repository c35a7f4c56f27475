package wisp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisp-web/wisp/http"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/router"
	"github.com/wisp-web/wisp/transport/dummy"
	"github.com/wisp-web/wisp/wlog"
)

func getApp(t *testing.T, alias string, handler router.Handler) *App {
	app := New().WithLogger(wlog.Nop())
	require.NoError(t, app.Register(alias, handler))

	return app
}

func TestServe(t *testing.T) {
	t.Run("a handler answers", func(t *testing.T) {
		app := getApp(t, "/hello", func(request *http.Request) *http.Response {
			name, _ := request.Param("name")
			return http.NewResponse().String("hello, " + name)
		})

		conn := dummy.NewConn([]byte("GET /hello?name=world HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		app.serve(conn)

		response := string(conn.Written)
		require.Contains(t, response, "HTTP/1.1 200 OK\r\n")
		require.Contains(t, response, "Connection: close\r\n")
		require.Contains(t, response, "hello, world")
	})

	t.Run("path info reaches the handler", func(t *testing.T) {
		app := getApp(t, "/store", func(request *http.Request) *http.Response {
			info, err := request.PathInfo()
			require.NoError(t, err)

			return http.NewResponse().String(info)
		})

		conn := dummy.NewConn([]byte("GET /store/books HTTP/1.1\r\n\r\n"))
		app.serve(conn)

		require.Contains(t, string(conn.Written), "/books")
	})

	t.Run("unmatched path", func(t *testing.T) {
		app := getApp(t, "/hello", func(*http.Request) *http.Response {
			return http.NewResponse()
		})

		conn := dummy.NewConn([]byte("GET /elsewhere HTTP/1.1\r\n\r\n"))
		app.serve(conn)

		require.Contains(t, string(conn.Written), "HTTP/1.1 404 Not Found\r\n")
	})

	t.Run("malformed request line aborts with 400", func(t *testing.T) {
		app := getApp(t, "/", func(*http.Request) *http.Response {
			return http.NewResponse()
		})

		conn := dummy.NewConn([]byte("GET /\r\n\r\n"))
		app.serve(conn)

		require.Contains(t, string(conn.Written), "HTTP/1.1 400 Bad Request\r\n")
	})

	t.Run("panicking handler turns into 500", func(t *testing.T) {
		app := getApp(t, "/", func(*http.Request) *http.Response {
			panic("boom")
		})

		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		app.serve(conn)

		require.Contains(t, string(conn.Written), "HTTP/1.1 500 Internal Server Error\r\n")
	})

	t.Run("posted body is available to the handler", func(t *testing.T) {
		app := getApp(t, "/submit", func(request *http.Request) *http.Response {
			text, err := request.Text()
			require.NoError(t, err)
			require.Equal(t, "home=Cosby&flavor=flies", text)

			flavor, ok := request.Param("flavor")
			require.True(t, ok)

			return http.NewResponse().Code(status.Created).String(flavor)
		})

		conn := dummy.NewConn([]byte(
			"POST /submit HTTP/1.1\r\n" +
				"Content-Length: 23\r\n" +
				"\r\n" +
				"home=Cosby&flavor=flies",
		))
		app.serve(conn)

		response := string(conn.Written)
		require.Contains(t, response, "HTTP/1.1 201 Created\r\n")
		require.Contains(t, response, "flies")
	})
}
