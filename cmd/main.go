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

	"github.com/univc/portfolio-server/internal/api/http/appcontext"
	"github.com/univc/portfolio-server/internal/api/http/router"
	"github.com/univc/portfolio-server/internal/config"
	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/repository/postgres"
	"github.com/univc/portfolio-server/internal/server"
	"github.com/univc/portfolio-server/internal/service"
	"github.com/univc/portfolio-server/internal/storage/spaces"
	"github.com/univc/portfolio-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenLedger := postgres.NewTokenLedgerRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	levelRepo := postgres.NewLevelRepository(db)
	projectRepo := postgres.NewProjectRepository(db)

	codec, err := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		logger.Fatal("failed to create token codec", "error", err)
	}

	storageClient, err := spaces.NewClient(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	tokenService := service.NewToken(codec, tokenLedger, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, logger)
	authService := service.NewAuth(userRepo, tokenService, logger)
	userService := service.NewUser(userRepo, levelRepo, logger)
	mediaService := service.NewMedia(storageClient, cfg.Storage.BasePath, logger)
	courseService := service.NewCourse(courseRepo, logger)
	levelService := service.NewLevel(levelRepo, logger)
	projectService := service.NewProject(projectRepo, logger)
	ctxMgr := appcontext.NewManager()

	r := router.New(cfg, authService, userService, tokenService, mediaService, courseService, levelService, projectService, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl server.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "address", httpServer.Address())
		if err := httpServer.Start(sl); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

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
