package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/tshrrx/chatty-bot/config"
	"github.com/tshrrx/chatty-bot/internal/api/handlers"
	"github.com/tshrrx/chatty-bot/internal/api/middleware"
	"github.com/tshrrx/chatty-bot/internal/api/routes"
	"github.com/tshrrx/chatty-bot/internal/logger"
	"github.com/tshrrx/chatty-bot/internal/metrics"
	"github.com/tshrrx/chatty-bot/internal/providers/llm"
	"github.com/tshrrx/chatty-bot/internal/services"
	"github.com/tshrrx/chatty-bot/internal/version"
)

const serviceName = "chatty-bot"

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load error")
	}

	provider := newProvider(context.Background(), cfg, log)
	defer provider.Close()

	info := version.Get()
	metrics.Register(prometheus.DefaultRegisterer)
	metrics.SetBuildInfo(info.Version, info.GitSHA, info.BuildTime)

	chatSvc := services.NewChatService(provider, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Chat:   handlers.NewChatHandler(chatSvc, log),
		Health: handlers.NewHealthHandler(serviceName, cfg.GeminiModel, cfg.Provider),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"port":     cfg.Port,
			"provider": cfg.Provider,
			"model":    cfg.GeminiModel,
			"version":  info.Version,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}

// newProvider never aborts startup: a relay that cannot reach its model still
// serves health checks and reports the failure in-band on each chat request.
func newProvider(ctx context.Context, cfg *config.Config, log *logrus.Logger) llm.Provider {
	switch cfg.Provider {
	case config.ProviderVertex:
		p, err := llm.NewVertexGemini(ctx, cfg.GoogleCloudProject, cfg.GoogleCloudLocation, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("Vertex AI client init failed, chat requests will fail")
			return llm.Unavailable{Err: err}
		}
		return p
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY is not set, chat requests will fail")
			return llm.Unavailable{Err: errors.New("GEMINI_API_KEY is not set")}
		}
		p, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.WithError(err).Warn("Gemini client init failed, chat requests will fail")
			return llm.Unavailable{Err: err}
		}
		return p
	}
}
