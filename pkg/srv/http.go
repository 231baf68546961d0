package srv

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sandevgo/secretowatch/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// httpService implements Service for a plain HTTP server.
type httpService struct {
	server *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) Service {
	return &httpService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (h *httpService) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", h.server.Addr).Msg("starting http server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpService) Shutdown(ctx context.Context) error {
	// ctx is usually already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return h.server.Shutdown(shutdownCtx)
}
