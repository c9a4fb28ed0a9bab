package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
)

// HTTPServer runs an echo instance on a listener produced by a SecurityLayer.
type HTTPServer struct {
	echo *echo.Echo
	addr string
}

func NewHTTPServer(e *echo.Echo, addr string) *HTTPServer {
	return &HTTPServer{echo: e, addr: addr}
}

// Address returns the address the server listens on.
func (s *HTTPServer) Address() string {
	return s.addr
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *HTTPServer) Start(sl SecurityLayer) error {
	ln, err := sl.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.echo.Listener = ln

	return s.echo.Start("")
}

// Stop drains in-flight requests and shuts the server down.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
