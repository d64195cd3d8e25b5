package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sams-backend/internal/auth"
	"sams-backend/internal/config"
	apphttp "sams-backend/internal/http"
	"sams-backend/internal/repository/sqlite"
	"sams-backend/internal/service"
	"sams-backend/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	staffRepo := sqlite.NewStaffRepository(db)
	galleryRepo := sqlite.NewGalleryRepository(db)
	announcementRepo := sqlite.NewAnnouncementRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := staffRepo.Init(ctx); err != nil {
		logger.Fatalf("init staff repository: %v", err)
	}
	if err := galleryRepo.Init(ctx); err != nil {
		logger.Fatalf("init gallery repository: %v", err)
	}
	if err := announcementRepo.Init(ctx); err != nil {
		logger.Fatalf("init announcement repository: %v", err)
	}

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		logger.Fatalf("setup token service: %v", err)
	}

	authSvc := service.NewAuthService(userRepo)
	staffSvc := service.NewStaffService(staffRepo)
	gallerySvc := service.NewGalleryService(galleryRepo)
	announcementSvc := service.NewAnnouncementService(announcementRepo)
	dashboardSvc := service.NewDashboardService(userRepo, staffRepo, galleryRepo, announcementRepo)

	media, serveLocalMedia, err := buildMediaStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup media storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if serveLocalMedia {
		router.Static("/media", cfg.Media.Dir)
	}

	handler := apphttp.NewHandler(
		authSvc,
		tokens,
		staffSvc,
		gallerySvc,
		announcementSvc,
		dashboardSvc,
		media,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildMediaStore picks S3 when a bucket is configured, otherwise a local
// directory served under /media. The second return value reports whether
// the router should serve that directory.
func buildMediaStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Store, bool, error) {
	if cfg.Storage.Bucket == "" {
		store, err := storage.NewLocalStore(cfg.Media.Dir, cfg.Media.BaseURL)
		if err != nil {
			return nil, false, err
		}
		logger.Infof("using local media dir %s", cfg.Media.Dir)
		return store, true, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, false, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})

	store, err := storage.NewS3Store(client, storage.S3Options{
		Bucket:    cfg.Storage.Bucket,
		KeyPrefix: cfg.Storage.KeyPrefix,
		BaseURL:   cfg.Storage.BaseURL,
		Region:    cfg.Storage.Region,
	})
	if err != nil {
		return nil, false, err
	}
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return store, false, nil
}
