package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"news-forum-api/handlers"
	"news-forum-api/helper"
	"news-forum-api/migrations"
	"news-forum-api/repositories"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, db, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	gin.SetMode(cfg.GinMode)

	if migrateOnStart {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := migrations.Up(sqlDB, logger); err != nil {
			return err
		}
	}

	// Initialize services
	store := repositories.NewStore(db)
	repos := store.Repositories()
	endpointService, err := services.NewEndpointService()
	if err != nil {
		return err
	}
	svc := handlers.Services{
		Articles:  services.NewArticleService(store),
		Comments:  services.NewCommentService(store),
		Topics:    services.NewTopicService(repos.Topics),
		Users:     services.NewUserService(repos.Users),
		Endpoints: endpointService,
	}

	// Setup router
	h := helper.NewHTTPHelper(logger)
	router := handlers.NewRouter(svc, h, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.WithCORS(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
