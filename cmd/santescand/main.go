package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/santescan/santescan/gen/proto/santescan/v1"
	"github.com/santescan/santescan/internal/analyses"
	"github.com/santescan/santescan/internal/async"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/export"
	"github.com/santescan/santescan/internal/extract"
	"github.com/santescan/santescan/internal/identity"
	"github.com/santescan/santescan/internal/llm/ollama"
	"github.com/santescan/santescan/internal/ocr"
	"github.com/santescan/santescan/internal/pipeline"
	repo "github.com/santescan/santescan/internal/repository"
	svc "github.com/santescan/santescan/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	zlog, err := zap.NewProduction()
	if err != nil {
		logger.Error("failed to build zap logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}

	signKey := []byte(cfg.Auth.JWTSecret)
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		svc.RecoverUnary(zlog),
		svc.LoggingUnary(zlog),
		svc.AuthUnary(signKey, zlog),
	))

	accountsRepo := repo.NewAccountRepository(entc, logger)
	analysesRepo := repo.NewAnalysisRepository(entc, logger)

	ocrCfg := ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}
	extractor := ocr.NewExtractor(ocrCfg, logger)
	ocrAdapter := extract.NewOCRAdapter(extractor, logger)

	summarizer := ollama.NewClient(ollama.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	detailStage := pipeline.NewDetailStage(entc, logger)
	queue := async.NewStageQueue(detailStage, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(time.Minute),
	)

	pipe := pipeline.New(ocrAdapter, summarizer, analysesRepo, queue, cfg.OCR.ScratchDir, logger)

	resolver := identity.NewResolver(accountsRepo, logger)
	reconciler := identity.NewReconciler(entc, logger)
	readsService := analyses.NewService(analysesRepo, logger)
	exportService := export.NewService(analysesRepo, logger)

	analysesService := svc.NewAnalysesService(resolver, pipe, readsService, exportService, zlog)
	v1.RegisterAnalysesServiceServer(grpcServer, analysesService)
	authService := svc.NewAuthService(reconciler, signKey, cfg.Auth.AccessTTL, zlog)
	v1.RegisterAuthServiceServer(grpcServer, authService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("santescand listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
