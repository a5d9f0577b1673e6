package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-crm/internal/api/dto"
	"github.com/spec-kit/support-crm/internal/service"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// TokenHandler exposes bearer-token issuance and refresh.
type TokenHandler struct {
	tokens *service.TokenService
}

// NewTokenHandler constructs handler.
func NewTokenHandler(tokenService *service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokenService}
}

// Issue handles POST /token.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	pair, err := h.tokens.Issue(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}})
}

// Refresh handles POST /token/refresh.
func (h *TokenHandler) Refresh(c *fiber.Ctx) error {
	var req dto.TokenRefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Refresh == "" {
		return apperrors.NewValidationError("refresh token required", nil)
	}

	pair, err := h.tokens.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}})
}
