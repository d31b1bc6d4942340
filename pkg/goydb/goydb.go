package goydb

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/goydb/alldocs/pkg/port"
)

// ShutdownTimeout is the time running requests get
// to complete once Serve is canceled
var ShutdownTimeout = 10 * time.Second

type Goydb struct {
	port.Storage
	Handler http.Handler
}

// Serve answers requests on l until ctx is done
func (g *Goydb) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           g.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(l)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if serveErr := <-errc; !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return err
}
