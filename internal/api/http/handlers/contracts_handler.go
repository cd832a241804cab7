package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelmelo2/maonamassa/internal/api/dto"
	"github.com/rafaelmelo2/maonamassa/internal/auth"
	"github.com/rafaelmelo2/maonamassa/internal/service"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// ContractsHandler manages agreement endpoints.
type ContractsHandler struct {
	service *service.ContractService
}

// NewContractsHandler constructs handler.
func NewContractsHandler(contractService *service.ContractService) *ContractsHandler {
	return &ContractsHandler{service: contractService}
}

// Create POST /contracts.
func (h *ContractsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	contract, err := h.service.Create(c.Context(), principal.User.ID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": contract})
}

// List GET /contracts.
func (h *ContractsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	page := parseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	size := parseIntQuery(c, "page_size", 20)
	if size < 1 || size > 100 {
		size = 20
	}
	contracts, err := h.service.ListForUser(c.Context(), principal.User.ID, size, (page-1)*size)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contracts})
}

// Get GET /contracts/:id.
func (h *ContractsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	contract, err := h.service.GetForParticipant(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contract})
}

// UpdateStatus PATCH /contracts/:id/status.
func (h *ContractsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateContractStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	contract, err := h.service.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contract})
}
