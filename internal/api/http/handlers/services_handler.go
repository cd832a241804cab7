package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelmelo2/maonamassa/internal/api/dto"
	"github.com/rafaelmelo2/maonamassa/internal/auth"
	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/service"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// ServicesHandler manages catalog listing endpoints.
type ServicesHandler struct {
	service *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{service: catalogService}
}

// Create POST /services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	listing, err := h.service.Create(c.Context(), principal.User.ID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": listing})
}

// List GET /services. Public catalog search defaults to active listings.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	query := parseServiceQuery(c)
	if len(query.Statuses) == 0 {
		query.Statuses = []domain.ServiceStatus{domain.ServiceStatusActive}
	}
	listings, err := h.service.List(c.Context(), query.ToFilter())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listings})
}

// Get GET /services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	listing, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listing})
}

// Update PATCH /services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	listing, err := h.service.Update(c.Context(), principal.User.ID, c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listing})
}

// SetStatus PATCH /services/:id/status.
func (h *ServicesHandler) SetStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SetServiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	listing, err := h.service.SetStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listing})
}

// Delete DELETE /services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Delete(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseServiceQuery(c *fiber.Ctx) dto.ServiceListQuery {
	query := dto.ServiceListQuery{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	}
	if raw := strings.TrimSpace(c.Query("professional_id")); raw != "" {
		query.ProfessionalID = &raw
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		query.Category = &raw
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				query.Statuses = append(query.Statuses, domain.ServiceStatus(part))
			}
		}
	}
	if raw := strings.TrimSpace(c.Query("search")); raw != "" {
		query.Search = &raw
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MaxBasePrice = &price
		}
	}
	query.EmergencyOnly = c.QueryBool("emergency")
	query.FeaturedOnly = c.QueryBool("featured")
	return query
}
