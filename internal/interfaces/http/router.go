package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jhoicas/gst-invoice-api/docs"
	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName          string
	InvoiceUC        *billing.InvoiceUseCase
	FrontendDir      string
	CORSAllowOrigins string
	Log              *logger.Logger
}

// Router registra middlewares y rutas de la API.
// No hay autenticación: CORS abierto es aceptable porque no hay sesión ni datos sensibles.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	origins := deps.CORSAllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:  "",
		ExposeHeaders: "Content-Disposition, X-Subtotal, X-GST-Amount, X-Total, X-Request-ID",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Documento OpenAPI registrado por el paquete docs (swag)
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	// Frontend (opcional en el despliegue)
	frontend := NewFrontendHandler(deps.FrontendDir)
	app.Get("/", frontend.Index)
	if frontend.Available() {
		app.Static("/static", deps.FrontendDir)
	}

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Log)
	app.Post("/calculate", invoiceHandler.Calculate)
	app.Post("/generate-invoice", invoiceHandler.GenerateInvoice)
}
