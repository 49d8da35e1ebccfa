package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/nyayai/LegalAPI/internal/adapter/utils"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/middleware"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string, corsOrigins []string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter(corsOrigins)

	r.Router.Post("/api/chat", middleware.ChatHandler)
	r.Router.Post("/api/upload", middleware.UploadHandler)
	r.Router.Post("/api/verify", middleware.VerifyHandler)
	r.Router.Post("/api/summarize", middleware.SummarizeHandler)
	r.Router.Post("/api/draft", middleware.DraftHandler)
	r.Router.Post("/api/export/pdf", middleware.ExportPDFHandler)
	r.Router.Get("/health", middleware.HealthHandler)
	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	println("\nServer is shutting down", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully: %s", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully is shutting down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
