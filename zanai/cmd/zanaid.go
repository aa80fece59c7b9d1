// Local development backend for the ZanAi chat client. Serves the two
// endpoints the client consumes so it can run end-to-end without the
// production deployment.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zanai/zanai/config"
	"zanai/zanai/controllers"
	"zanai/zanai/routes"
	"zanai/zanai/sources/memory"
	"zanai/zanai/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	history := memory.NewHistoryStore()
	history.Append("assistant", "Welcome back! This is your local ZanAi backend.")

	authCtrl := controllers.NewAuthController(history, cfg)
	chatCtrl := controllers.NewChatController(history)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/api/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/api/chat", routes.ChatRoutes(chatCtrl, cfg))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("zanaid listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
