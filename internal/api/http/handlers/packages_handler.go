package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// PackagesHandler manages curated package endpoints.
type PackagesHandler struct {
	catalog *service.CatalogService
}

// NewPackagesHandler constructs the handler.
func NewPackagesHandler(catalogService *service.CatalogService) *PackagesHandler {
	return &PackagesHandler{catalog: catalogService}
}

// List GET /packages.
func (h *PackagesHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListPackages(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.PackageResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewPackageResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get GET /packages/:id.
func (h *PackagesHandler) Get(c *fiber.Ctx) error {
	pkg, err := h.catalog.GetPackage(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPackageResponse(pkg))
}

// Create POST /packages (admin).
func (h *PackagesHandler) Create(c *fiber.Ctx) error {
	var req dto.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pkg := req.ToDomain()
	if err := h.catalog.CreatePackage(c.Context(), pkg); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPackageResponse(pkg))
}

// Update PUT /packages/:id (admin).
func (h *PackagesHandler) Update(c *fiber.Ctx) error {
	var req dto.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pkg := req.ToDomain()
	pkg.ID = c.Params("id")
	if err := h.catalog.UpdatePackage(c.Context(), pkg); err != nil {
		return err
	}
	return c.JSON(dto.NewPackageResponse(pkg))
}

// Delete DELETE /packages/:id (admin).
func (h *PackagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeletePackage(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "package deleted"})
}
