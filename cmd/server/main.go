package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/events"
	"blogapi/internal/middleware"
	"blogapi/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, finding env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	configureLogger(log, cfg)

	// Storage
	var stores *db.Stores
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		stores = db.NewMemoryStores()
	default:
		client, err := db.Connect(context.Background(), cfg.Mongo, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.WithError(err).Error("Failed to disconnect from database")
			}
		}()
		stores = db.NewMongoStores(client.Database(cfg.Mongo.Database))
	}

	// Events
	var pub events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		np, err := events.NewNATSPublisher(events.NATSConfig{
			URL:           cfg.NATSURL,
			MaxReconnects: 10,
			ReconnectWait: 2 * time.Second,
			ClientName:    "blogapi",
		}, log)
		if err != nil {
			log.WithError(err).Error("Failed to connect to NATS")
			return
		}
		pub = np
		log.WithField("url", cfg.NATSURL).Info("Publishing events to NATS")
	}
	defer pub.Close()

	// Initialize Gin
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	h := router.NewHandlers(stores, pub, log)

	// Landing page and static assets
	if renderer, ok := loadTemplates(cfg.TemplatesDir, log); ok {
		r.HTMLRender = renderer
		r.GET("/", h.Pages.Index)
	}
	r.Static("/static", cfg.StaticDir)

	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	// Listen errors go through a channel so the deferred cleanup still runs.
	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Blog API server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		log.WithError(err).Error("Server failed")
		return
	case <-quit:
	}
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}

func configureLogger(log *logrus.Logger, cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

// loadTemplates registers the landing page. It reports false when the
// templates directory has no index, so the API can run on its own.
func loadTemplates(templatesDir string, log *logrus.Logger) (multitemplate.Renderer, bool) {
	index := filepath.Join(templatesDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.WithField("path", index).Warn("Landing page template not found, skipping /")
		return nil, false
	}

	r := multitemplate.NewRenderer()
	r.AddFromFiles("index.html", index)
	return r, true
}
