package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkozyrev/weekplanner/internal/api/http/handler"
	"github.com/mkozyrev/weekplanner/internal/api/http/httpctx"
	"github.com/mkozyrev/weekplanner/internal/api/http/router"
	"github.com/mkozyrev/weekplanner/internal/auth"
	"github.com/mkozyrev/weekplanner/internal/config"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
	"github.com/mkozyrev/weekplanner/internal/repository/postgres"
	"github.com/mkozyrev/weekplanner/internal/server"
	"github.com/mkozyrev/weekplanner/internal/service"
	"github.com/mkozyrev/weekplanner/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is a local convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if cfg.JWT.Secret == "devsecret" {
		logger.Warn("JWT_SECRET is not set, using insecure default")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	taskService := service.NewTask(taskRepo, logger)

	authHandler := handler.NewAuth(authService, ctxMgr, logger)
	taskHandler := handler.NewTask(taskService, ctxMgr, logger)

	r := router.New(authHandler, taskHandler, tokenManager, ctxMgr, cfg.HTTP.CORSOrigin, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
