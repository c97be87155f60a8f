package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-builder/config"
	v1 "go-resume-builder/internal/delivery/http/v1"
	"go-resume-builder/internal/render"
	"go-resume-builder/internal/repository/sqlite"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder", "port", cfg.Port, "data_dir", cfg.DataDir)

	// 3. Open Store
	// A store that cannot open is fatal: nothing works without it.
	ctx := context.Background()
	store, err := sqlite.Open(ctx, cfg.StorePath())
	if err != nil {
		logger.Log.Error("Failed to open store", "path", cfg.StorePath(), "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Setup Repository
	resumeRepo := sqlite.NewResumeRepository(store)

	// 5. Setup UseCases
	resumeUC := usecase.NewResumeUsecase(resumeRepo, store)
	draftUC := usecase.NewDraftUsecase(resumeRepo, resumeUC)
	printer := render.NewPDFRenderer(cfg.ChromePath, time.Duration(cfg.RenderTimeoutSeconds)*time.Second)
	exportUC := usecase.NewExportUsecase(resumeUC, draftUC, printer)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		DraftUC:  draftUC,
		ExportUC: exportUC,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited gracefully")
}
