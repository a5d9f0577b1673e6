package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-crm/internal/api/dto"
	"github.com/spec-kit/support-crm/internal/auth"
	"github.com/spec-kit/support-crm/internal/service"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// AccountsHandler exposes the /users resource.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Register handles POST /users. Public; no bearer token required.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	principal, _ := auth.PrincipalFromContext(c)
	account, err := h.accounts.Register(c.Context(), principal, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"result": dto.NewAccountFull(account)})
}

// List handles GET /users.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	accounts, err := h.accounts.List(c.Context(), principal, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"results": dto.NewAccountLightList(accounts)})
}

// Get handles GET /users/:id.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	account, err := h.accounts.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": dto.NewAccountFull(account)})
}

// Update handles PUT/PATCH /users/:id. Email and role in the payload
// are ignored.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.AccountUpdateInput{
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	account, err := h.accounts.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"result": dto.NewAccountFull(account)})
}
