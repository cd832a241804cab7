package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelmelo2/maonamassa/internal/api/dto"
	"github.com/rafaelmelo2/maonamassa/internal/auth"
	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/service"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// UsersHandler manages account endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// Me GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.Get(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": domain.NewUserEntity(user).ToJSON()})
}

// UpdateMe PATCH /users/me.
func (h *UsersHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	user, err := h.service.UpdateProfile(c.Context(), principal.User.ID, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": domain.NewUserEntity(user).ToJSON()})
}

// DeleteMe DELETE /users/me.
func (h *UsersHandler) DeleteMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Delete(c.Context(), principal.User.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyEmail POST /users/me/verify/email.
func (h *UsersHandler) VerifyEmail(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.VerifyEmail(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": domain.NewUserEntity(user).ToJSON()})
}

// VerifyPhone POST /users/me/verify/phone.
func (h *UsersHandler) VerifyPhone(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.VerifyPhone(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": domain.NewUserEntity(user).ToJSON()})
}

// GetSummary GET /users/:id/summary.
func (h *UsersHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// SetStatus PATCH /admin/users/:id/status.
func (h *UsersHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status domain.UserStatus `json:"status" validate:"required,oneof=active inactive banned"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	id := c.Params("id")
	var (
		user *domain.User
		err  error
	)
	switch req.Status {
	case domain.UserStatusActive:
		user, err = h.service.Activate(c.Context(), id)
	case domain.UserStatusInactive:
		user, err = h.service.Deactivate(c.Context(), id)
	case domain.UserStatusBanned:
		user, err = h.service.Ban(c.Context(), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": domain.NewUserEntity(user).ToJSON()})
}
