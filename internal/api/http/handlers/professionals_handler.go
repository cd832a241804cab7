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

// ProfessionalsHandler manages provider profile endpoints.
type ProfessionalsHandler struct {
	service *service.ProfessionalService
}

// NewProfessionalsHandler constructs handler.
func NewProfessionalsHandler(professionalService *service.ProfessionalService) *ProfessionalsHandler {
	return &ProfessionalsHandler{service: professionalService}
}

// Create POST /professionals.
func (h *ProfessionalsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	professional, err := h.service.Create(c.Context(), principal.User.ID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": professional})
}

// List GET /professionals.
func (h *ProfessionalsHandler) List(c *fiber.Ctx) error {
	query := parseProfessionalQuery(c)
	professionals, err := h.service.List(c.Context(), query.ToFilter())
	if err != nil {
		return err
	}
	items := make([]domain.ProfessionalSummary, 0, len(professionals))
	for i := range professionals {
		items = append(items, domain.NewProfessionalEntity(&professionals[i]).ToSummary())
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetSummary GET /professionals/:id. Public view, counts a profile visit.
func (h *ProfessionalsHandler) GetSummary(c *fiber.Ctx) error {
	id := c.Params("id")
	summary, err := h.service.Summary(c.Context(), id)
	if err != nil {
		return err
	}
	h.service.RecordProfileView(c.Context(), id)
	return c.JSON(fiber.Map{"data": summary})
}

// Me GET /professionals/me. Owner view, includes financial data.
func (h *ProfessionalsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	professional, err := h.service.GetByUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

// UpdateMe PATCH /professionals/me.
func (h *ProfessionalsHandler) UpdateMe(c *fiber.Ctx) error {
	professional, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	updated, err := h.service.UpdateProfile(c.Context(), professional.ID, req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// AddPortfolioItem POST /professionals/me/portfolio.
func (h *ProfessionalsHandler) AddPortfolioItem(c *fiber.Ctx) error {
	professional, err := h.ownProfile(c)
	if err != nil {
		return err
	}
	var req dto.AddPortfolioItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	item, err := h.service.AddPortfolioItem(c.Context(), professional.ID, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": item})
}

// SetStatus PATCH /admin/professionals/:id/status.
func (h *ProfessionalsHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status domain.ProfessionalStatus `json:"status" validate:"required,oneof=active inactive suspended"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	id := c.Params("id")
	var (
		professional *domain.Professional
		err          error
	)
	switch req.Status {
	case domain.ProfessionalStatusActive:
		professional, err = h.service.Activate(c.Context(), id)
	case domain.ProfessionalStatusInactive:
		professional, err = h.service.Deactivate(c.Context(), id)
	case domain.ProfessionalStatusSuspended:
		professional, err = h.service.Suspend(c.Context(), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

// Verify POST /admin/professionals/:id/verify.
func (h *ProfessionalsHandler) Verify(c *fiber.Ctx) error {
	professional, err := h.service.Verify(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

// SetPlan PATCH /admin/professionals/:id/plan.
func (h *ProfessionalsHandler) SetPlan(c *fiber.Ctx) error {
	var req struct {
		Plan domain.ProfessionalPlan `json:"plan" validate:"required,oneof=free premium"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	id := c.Params("id")
	var (
		professional *domain.Professional
		err          error
	)
	if req.Plan == domain.PlanPremium {
		professional, err = h.service.UpgradeToPremium(c.Context(), id)
	} else {
		professional, err = h.service.DowngradeToFree(c.Context(), id)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

// UpdateMetrics PUT /admin/professionals/:id/metrics.
func (h *ProfessionalsHandler) UpdateMetrics(c *fiber.Ctx) error {
	var req dto.UpdateMetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	professional, err := h.service.UpdateMetrics(c.Context(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

func (h *ProfessionalsHandler) ownProfile(c *fiber.Ctx) (*domain.Professional, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("user required")
	}
	return h.service.GetByUser(c.Context(), principal.User.ID)
}

func parseProfessionalQuery(c *fiber.Ctx) dto.ProfessionalListQuery {
	query := dto.ProfessionalListQuery{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", 20),
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := domain.ProfessionalStatus(raw)
		query.Status = &status
	}
	if raw := strings.TrimSpace(c.Query("plan")); raw != "" {
		plan := domain.ProfessionalPlan(raw)
		query.Plan = &plan
	}
	if raw := strings.TrimSpace(c.Query("specialty")); raw != "" {
		query.Specialty = &raw
	}
	if raw := strings.TrimSpace(c.Query("search")); raw != "" {
		query.Search = &raw
	}
	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MinRating = &rating
		}
	}
	query.EmergencyOnly = c.QueryBool("emergency")
	return query
}

func parseIntQuery(c *fiber.Ctx, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
