package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JadeHarbert/CourseProject/app/configs"
	"github.com/JadeHarbert/CourseProject/app/db/seeders"
	"github.com/JadeHarbert/CourseProject/app/models/migrations"
	"github.com/JadeHarbert/CourseProject/app/routes"
	"github.com/JadeHarbert/CourseProject/app/utils/renderer"
	"github.com/JadeHarbert/CourseProject/app/utils/sessions"
	"github.com/JadeHarbert/CourseProject/web"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func serveAction(ctx context.Context, _ *cli.Command) error {
	env := configs.LoadEnv()
	flush, err := configs.InitLogger(env)
	if err != nil {
		return err
	}
	defer flush()

	zap.L().Info("app starting...",
		zap.String("env", env.AppEnv),
		zap.String("driver", env.DBDriver),
		zap.String("port", env.Port),
	)

	db, err := configs.OpenConnection(env)
	if err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}

	if env.ReseedOnStart {
		if err := seeders.ResetAndSeed(db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	} else if err := migrations.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		return err
	}
	store := sessions.NewCookieSessionStore(env.IsProduction(), keys.AuthKey, keys.EncKey)

	router := routes.NewRouter(db, renderer.New(web.Templates, !env.IsProduction()), store, routes.Options{
		CSRFKey:           keys.CSRFKey,
		SecureCookies:     env.IsProduction(),
		AdminUser:         env.AdminUser,
		AdminPasswordHash: env.AdminPasswordHash,
	})

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zap.L().Info("Server gracefully stopped")
	return nil
}
