package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/application/usecase"
)

// ContractorHandler maneja las peticiones HTTP del registro de contratistas
// y sus evaluaciones.
type ContractorHandler struct {
	contractors *usecase.ContractorUseCase
	evaluations *usecase.EvaluationUseCase
}

// NewContractorHandler construye el handler.
func NewContractorHandler(contractors *usecase.ContractorUseCase, evaluations *usecase.EvaluationUseCase) *ContractorHandler {
	return &ContractorHandler{contractors: contractors, evaluations: evaluations}
}

// List godoc
// @Summary      Listar contratistas
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Param        type       query  string  false  "FABRIC | PRODUCTION | PACKAGING | STONE_WASH"
// @Param        is_active  query  bool    false  "Filtrar por estado"
// @Success      200  {object}  dto.ContractorListResponse
// @Router       /api/contractors [get]
func (h *ContractorHandler) List(c *fiber.Ctx) error {
	var activeOnly *bool
	if c.Query("is_active") != "" {
		b := c.QueryBool("is_active")
		activeOnly = &b
	}
	out, err := h.contractors.List(c.Query("type"), activeOnly)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear contratista (flujo de gestión directa)
// @Tags         contractors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractorRequest  true  "Datos del contratista"
// @Success      201  {object}  dto.ContractorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contractors [post]
func (h *ContractorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.contractors.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detalle de contratista con historial completo
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del contratista"
// @Success      200  {object}  dto.ContractorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.contractors.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SubmitEvaluation godoc
// @Summary      Registrar evaluación de un contratista
// @Tags         evaluations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del contratista"
// @Param        body  body  dto.SubmitEvaluationRequest  true  "Calificación"
// @Success      201  {object}  dto.EvaluationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id}/evaluations [post]
func (h *ContractorHandler) SubmitEvaluation(c *fiber.Ctx) error {
	var in dto.SubmitEvaluationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.evaluations.Submit(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EvaluationHistory godoc
// @Summary      Historial paginado de evaluaciones
// @Tags         evaluations
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del contratista"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Tamaño"  default(10)
// @Success      200  {object}  dto.EvaluationHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id}/evaluations [get]
func (h *ContractorHandler) EvaluationHistory(c *fiber.Ctx) error {
	out, err := h.evaluations.History(c.Params("id"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// EvaluationSummary godoc
// @Summary      Promedio de calificaciones de un contratista
// @Tags         evaluations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del contratista"
// @Success      200  {object}  dto.EvaluationSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id}/evaluations/summary [get]
func (h *ContractorHandler) EvaluationSummary(c *fiber.Ctx) error {
	out, err := h.evaluations.Average(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
