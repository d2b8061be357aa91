package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	infrapdf "github.com/jhoicas/gst-invoice-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/gst-invoice-api/internal/interfaces/http"
	"github.com/jhoicas/gst-invoice-api/pkg/config"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// PDF: factura GST de una página
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Options{
		CurrencySymbol: cfg.PDF.CurrencySymbol,
		SignatureLabel: cfg.PDF.SignatureLabel,
	})
	invoiceUC := billing.NewInvoiceUseCase(pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsFile,
			Path:     "docs",
			Title:    "GST Invoice API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.DocsFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:          cfg.App.Name,
		InvoiceUC:        invoiceUC,
		FrontendDir:      cfg.Frontend.Dir,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		Log:              log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
