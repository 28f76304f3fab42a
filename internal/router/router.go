package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "invoicedesk/docs"
	"invoicedesk/internal/handler"
	"invoicedesk/internal/middleware"
	"invoicedesk/internal/service"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Invoice  *handler.InvoiceHandler
	Document *handler.DocumentHandler
	Company  *handler.CompanyHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(allowedOrigins []string, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes; open when operator login is not configured
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/company", h.Company.Defaults)

	invoices := protected.Group("/invoices")
	invoices.GET("", h.Invoice.List)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("/next-number", h.Invoice.NextNumber)
	invoices.GET("/stats", h.Invoice.Stats)
	invoices.GET("/export", h.Document.Export)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.GET("/:id/pdf", h.Document.PDF)
	invoices.POST("/:id/pdf/archive", h.Document.Archive)
	invoices.POST("/:id/send", h.Document.Send)

	return r
}
