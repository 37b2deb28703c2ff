package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dasolarter/finanzasapi/internal/observability/logger"
)

// ShutdownTimeout es el máximo que esperamos a que terminen los
// requests en vuelo antes de cortar.
const ShutdownTimeout = 10 * time.Second

// Start levanta el servidor HTTP y bloquea hasta que ctx se cancele o
// el listener falle. Drena los requests en vuelo antes de devolver.
func Start(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info("http server escuchando", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		logger.L().Info("apagando http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.L().Warn("shutdown forzado", logger.Err(err))
			return srv.Close()
		}
		return nil
	})

	return g.Wait()
}
