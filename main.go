package main

import (
	"context"
	"log"
	"time"

	"github.com/Kariqs/storefront/controllers"
	"github.com/Kariqs/storefront/initializers"
	"github.com/Kariqs/storefront/repository"
	"github.com/Kariqs/storefront/routes"
	"github.com/Kariqs/storefront/sessions"
	"github.com/Kariqs/storefront/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := initializers.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := initializers.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := initializers.ConnectToDB(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := initializers.SyncDatabase(initializers.DB, logger); err != nil {
		logger.Fatal("failed to sync database", zap.Error(err))
	}
	if cfg.SeedFile != "" {
		if err := initializers.SeedProducts(initializers.DB, cfg.SeedFile, logger); err != nil {
			logger.Fatal("failed to seed products", zap.Error(err))
		}
	}

	store, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create session store", zap.Error(err))
	}

	controller := &controllers.Controller{
		Catalog:          repository.NewProducts(initializers.DB),
		Accounts:         repository.NewUsers(initializers.DB),
		Sessions:         store,
		KeepCartOnLogout: cfg.KeepCartOnLogout,
		Log:              logger,
	}

	if cfg.S3Bucket != "" {
		uploader, err := utils.NewS3Uploader(context.Background(), cfg.S3Bucket)
		if err != nil {
			logger.Fatal("failed to configure image storage", zap.Error(err))
		}
		controller.Images = uploader
	}
	if cfg.MailEnabled() {
		controller.Mailer = utils.NewMailer(utils.SMTPConfig{
			From:     cfg.FromEmail,
			Password: cfg.FromEmailPassword,
			Host:     cfg.SMTPHost,
			Address:  cfg.SMTPAddress,
			StoreURL: cfg.StoreURL,
		})
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.Setup(server, controller)

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("sessionStore", cfg.SessionStore))
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to serve", zap.Error(err))
	}
}

func newSessionStore(cfg initializers.Config, logger *zap.Logger) (sessions.Store, error) {
	secure := !cfg.IsDevelopment()
	if cfg.SessionStore == "database" {
		store := sessions.NewDatabaseStore(initializers.DB, cfg.SessionMaxAge, secure)
		go store.RunCleanup(context.Background(), cfg.SessionCleanup, logger)
		return store, nil
	}
	store, err := sessions.NewCookieStore(cfg.SessionSecret, cfg.SessionMaxAge, secure)
	if err != nil {
		return nil, err
	}
	return store, nil
}
