package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/confetex/ordenes-api/internal/application/dto"
	"github.com/confetex/ordenes-api/internal/application/usecase"
	"github.com/confetex/ordenes-api/internal/domain/catalog"
)

// CatalogHandler maneja las peticiones HTTP para los ocho catálogos.
// La categoría llega como slug en la ruta y se resuelve al enum cerrado;
// un slug desconocido es 404 sin tocar la base.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func parseCategory(c *fiber.Ctx) (catalog.Category, bool) {
	cat, ok := catalog.Parse(c.Params("category"))
	if !ok {
		_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CATEGORY", Message: "categoría de catálogo desconocida"})
	}
	return cat, ok
}

// List godoc
// @Summary      Listar entradas de un catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category          path   string  true   "Slug de la categoría"
// @Param        include_inactive  query  bool    false  "Incluir entradas desactivadas"
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cat, ok := parseCategory(c)
	if !ok {
		return nil
	}
	out, err := h.uc.List(cat, c.QueryBool("include_inactive", false))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear entrada de catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string                   true  "Slug de la categoría"
// @Param        body      body  dto.CatalogEntryRequest  true  "Nombre y valor"
// @Success      201  {object}  dto.CatalogEntryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	cat, ok := parseCategory(c)
	if !ok {
		return nil
	}
	var in dto.CatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), cat, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar o actualizar entrada de catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string                   true  "Slug de la categoría"
// @Param        id        path  string                   true  "ID de la entrada"
// @Param        body      body  dto.CatalogEntryRequest  true  "Nuevo nombre y valor"
// @Success      200  {object}  dto.CatalogEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category}/{id} [put]
func (h *CatalogHandler) Rename(c *fiber.Ctx) error {
	cat, ok := parseCategory(c)
	if !ok {
		return nil
	}
	var in dto.CatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Rename(GetUserID(c), cat, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SoftDelete godoc
// @Summary      Desactivar entrada de catálogo (borrado lógico)
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Slug de la categoría"
// @Param        id        path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category}/{id} [delete]
func (h *CatalogHandler) SoftDelete(c *fiber.Ctx) error {
	cat, ok := parseCategory(c)
	if !ok {
		return nil
	}
	if err := h.uc.SoftDelete(GetUserID(c), cat, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Reconcile godoc
// @Summary      Reconciliar catálogo con el registro de contratistas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Slug de la categoría (debe ser mapeada)"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category}/reconcile [post]
func (h *CatalogHandler) Reconcile(c *fiber.Ctx) error {
	cat, ok := parseCategory(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Reconcile(cat)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
