package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medscribe/notetaker-api/internal/config"
	healthHandler "github.com/medscribe/notetaker-api/internal/handler/health"
	nlpHandler "github.com/medscribe/notetaker-api/internal/handler/nlp"
	prometheusHandler "github.com/medscribe/notetaker-api/internal/handler/prometheus"
	sentimentHandler "github.com/medscribe/notetaker-api/internal/handler/sentiment"
	soapHandler "github.com/medscribe/notetaker-api/internal/handler/soap"
	summarizationHandler "github.com/medscribe/notetaker-api/internal/handler/summarization"
	transcriptionHandler "github.com/medscribe/notetaker-api/internal/handler/transcription"
	"github.com/medscribe/notetaker-api/internal/middleware"
	"github.com/medscribe/notetaker-api/internal/nlp/extract"
	"github.com/medscribe/notetaker-api/internal/nlp/infer"
	"github.com/medscribe/notetaker-api/internal/nlp/pipeline"
	"github.com/medscribe/notetaker-api/internal/nlp/registry"
	"github.com/medscribe/notetaker-api/internal/nlp/sentiment"
	"github.com/medscribe/notetaker-api/internal/nlp/summarize"
	"github.com/medscribe/notetaker-api/internal/repository/postgres"
	"github.com/medscribe/notetaker-api/internal/router"
	transcriptionService "github.com/medscribe/notetaker-api/internal/service/transcription"
	"github.com/medscribe/notetaker-api/pkg/logger"
	"github.com/medscribe/notetaker-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	appMetrics := metrics.New("notetaker", "api")

	// Model registry: slots load lazily on first use, so missing model
	// files do not block startup.
	reg := registry.New(registryConfig(cfg.NLP, appMetrics))
	defer reg.Close()

	extractor := extract.NewExtractor(reg, cfg.NLP.MaxModelChars)
	summarizer := summarize.NewSummarizer(extractor)
	classifier := sentiment.NewClassifier(reg, cfg.NLP.ConfidenceThreshold, cfg.NLP.MaxModelChars)
	pipe := pipeline.New(extractor, summarizer, classifier)

	patientRepo := postgres.NewPatientRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	resultCache := gocache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	transcriptionSvc := transcriptionService.NewService(
		pipe,
		patientRepo,
		conversationRepo,
		reportRepo,
		outboxRepo,
		resultCache,
		appLogger,
		appMetrics,
	)

	promH := prometheusHandler.New()
	healthH := healthHandler.NewHandler(db, reg)

	r := router.NewRouter(
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:  cfg.RateLimit.Burst,
			CORSConfig: middleware.DefaultCORSConfig(),
			Timeout:    middleware.TimeoutConfig{Duration: cfg.Server.RequestTimeout},
		},
		promH,
		healthH,
		transcriptionHandler.NewHandler(transcriptionSvc),
		nlpHandler.NewHandler(pipe, reg),
		sentimentHandler.NewHandler(classifier),
		summarizationHandler.NewHandler(summarizer),
		soapHandler.NewHandler(pipe),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func registryConfig(cfg config.NLPConfig, m *metrics.Metrics) registry.Config {
	return registry.Config{
		ClinicalNER: inferConfig(cfg.OrtLibrary, cfg.ClinicalNER),
		GeneralNER:  inferConfig(cfg.OrtLibrary, cfg.GeneralNER),
		Sentiment:   inferConfig(cfg.OrtLibrary, cfg.Sentiment),
		OnLoadFailure: func(model string) {
			m.ModelLoadFailures.WithLabelValues(model).Inc()
		},
		OnOutcome: func(strategy string, status registry.Status) {
			m.StrategyOutcomes.WithLabelValues(strategy, status.String()).Inc()
		},
	}
}

func inferConfig(ortLibrary string, m config.ModelConfig) infer.Config {
	return infer.Config{
		OrtLibrary:    ortLibrary,
		ModelPath:     m.ModelPath,
		TokenizerPath: m.TokenizerPath,
		MaxSeqLen:     m.MaxSeqLen,
	}
}
