package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/confetex/ordenes-api/internal/application/auth"
	"github.com/confetex/ordenes-api/internal/application/usecase"
	"github.com/confetex/ordenes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *usecase.CatalogUseCase
	ContractorUC *usecase.ContractorUseCase
	EvaluationUC *usecase.EvaluationUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Catálogos: lectura para cualquier usuario autenticado, mutación solo admin
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/:category", catalogHandler.List)
	catalogGroup.Post("/:category", adminOnly, catalogHandler.Create)
	catalogGroup.Post("/:category/reconcile", adminOnly, catalogHandler.Reconcile)
	catalogGroup.Put("/:category/:id", adminOnly, catalogHandler.Rename)
	catalogGroup.Delete("/:category/:id", adminOnly, catalogHandler.SoftDelete)

	// Contratistas y evaluaciones
	contractors := protected.Group("/contractors")
	contractorHandler := NewContractorHandler(deps.ContractorUC, deps.EvaluationUC)
	contractors.Get("/", contractorHandler.List)
	contractors.Post("/", adminOnly, contractorHandler.Create)
	contractors.Get("/:id", contractorHandler.GetByID)
	contractors.Post("/:id/evaluations", contractorHandler.SubmitEvaluation)
	contractors.Get("/:id/evaluations", contractorHandler.EvaluationHistory)
	contractors.Get("/:id/evaluations/summary", contractorHandler.EvaluationSummary)
}
