package wisp

import (
	"net"

	"github.com/wisp-web/wisp/config"
	"github.com/wisp-web/wisp/http"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/internal/address"
	"github.com/wisp-web/wisp/internal/protocol/http1"
	"github.com/wisp-web/wisp/internal/server/tcp"
	"github.com/wisp-web/wisp/router"
	"github.com/wisp-web/wisp/transport"
	"github.com/wisp-web/wisp/wlog"
)

// fallbackVersion is used for responses to requests whose request line
// never parsed far enough to learn the real version.
const fallbackVersion = "HTTP/1.1"

// App ties the registry, the parser and the accept loop together. Usage:
//
//	app := wisp.New()
//	_ = app.Register("/hello", func(request *wisphttp.Request) *wisphttp.Response {
//		return wisphttp.NewResponse().String("hello!")
//	})
//	_ = app.Listen(":8080")
type App struct {
	cfg      *config.Config
	registry *router.Registry
	log      wlog.Logger
	srv      *tcp.Server
}

func New() *App {
	return &App{
		cfg:      config.Default(),
		registry: router.New(),
		log:      wlog.New(),
	}
}

// WithConfig replaces the default configuration.
func (a *App) WithConfig(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// WithLogger replaces the default logger.
func (a *App) WithLogger(log wlog.Logger) *App {
	a.log = log
	return a
}

// Register binds a handler to an alias prefix.
func (a *App) Register(alias string, handler router.Handler) error {
	return a.registry.Register(alias, handler)
}

// Registry exposes the alias registry, e.g. for unregistering.
func (a *App) Registry() *router.Registry {
	return a.registry
}

// Listen starts serving on the given address and blocks until the server
// is stopped.
func (a *App) Listen(addr string) error {
	sock, err := net.Listen("tcp", address.Normalize(addr))
	if err != nil {
		return err
	}

	a.srv = tcp.NewServer(sock, a.serve)
	return a.srv.Start()
}

// Stop closes the listener along with all live connections.
func (a *App) Stop() error {
	return a.srv.Stop()
}

// GracefulShutdown closes the listener, letting live connections finish.
func (a *App) GracefulShutdown() error {
	return a.srv.GracefulShutdown()
}

// serve owns a single connection: one request is parsed, dispatched and
// answered, then the connection is closed. Keep-alive is out of scope.
func (a *App) serve(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	client := transport.NewClient(
		conn, a.cfg.NET.ReadTimeout,
		make([]byte, a.cfg.NET.ReadBufferSize), a.cfg.NET.MaxLineSize,
	)
	serializer := http1.NewSerializer(client, make([]byte, 0, a.cfg.NET.WriteBufferPrealloc))

	request, err := http1.ParseRequest(a.cfg, client, a.registry, a.log)
	if err != nil {
		a.log.Log(wlog.LevelWarning, "aborting the connection", err)
		_ = serializer.Write(fallbackVersion, http.Error(err))
		return
	}

	if err = serializer.Write(request.Version, a.dispatch(request)); err != nil {
		a.log.Log(wlog.LevelWarning, "failed to write the response", err)
	}
}

func (a *App) dispatch(request *http.Request) (resp *http.Response) {
	defer func() {
		if p := recover(); p != nil {
			a.log.Log(wlog.LevelError, "a handler panicked", nil)
			resp = http.NewResponse().Code(status.InternalServerError)
		}
	}()

	handler, found := a.registry.Lookup(request.Path)
	if !found {
		return http.NewResponse().
			Code(status.NotFound).
			String("there are no handlers for the page")
	}

	return handler(request)
}
