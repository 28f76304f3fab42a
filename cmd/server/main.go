// @title invoicedesk API
// @version 1.0
// @description Invoice management API: numbering, payments, PDFs and exports.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoicedesk/internal/config"
	"invoicedesk/internal/email/noop"
	"invoicedesk/internal/email/ses"
	"invoicedesk/internal/handler"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/pdf"
	"invoicedesk/internal/port"
	"invoicedesk/internal/repository/postgres"
	"invoicedesk/internal/router"
	"invoicedesk/internal/service"
	s3storage "invoicedesk/internal/storage/s3"
	"invoicedesk/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	invoiceRepo := postgres.NewInvoiceRepo(db)

	// Archiving and emailing need object storage; without it they report 503.
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(ctx, cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.Auth, cfg.JWT)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	documentSvc := service.NewDocumentService(
		invoiceRepo,
		pdf.NewRenderer(cfg.Company),
		xlsxexport.NewExporter(),
		storage,
		emailSender,
		service.DocumentConfig{
			Bucket:        cfg.S3.Bucket,
			KeyPrefix:     cfg.S3.KeyPrefix,
			PresignExpiry: cfg.S3.PresignExpiry,
		},
	)

	r := router.Setup(cfg.CORS.AllowedOrigins, authSvc, router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Document: handler.NewDocumentHandler(documentSvc),
		Company:  handler.NewCompanyHandler(cfg.Company),
		Health:   handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Server.Port).
			Bool("auth", cfg.Auth.Enabled()).
			Bool("storage", storage != nil).
			Str("email", cfg.Email.Provider).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
