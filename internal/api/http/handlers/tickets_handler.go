package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-crm/internal/api/dto"
	"github.com/spec-kit/support-crm/internal/auth"
	"github.com/spec-kit/support-crm/internal/service"
	apperrors "github.com/spec-kit/support-crm/pkg/util"
)

// TicketsHandler exposes the /tickets resource.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService}
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.Create(c.Context(), principal, service.TicketCreateInput{
		Header: req.Header,
		Body:   req.Body,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"result": dto.NewTicketFull(ticket)})
}

// List handles GET /tickets. Results are narrowed per role before
// fetching; the light projection omits the body.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	tickets, err := h.tickets.List(c.Context(), principal, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"results": dto.NewTicketLightList(tickets)})
}

// Get handles GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := h.tickets.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": dto.NewTicketFull(ticket)})
}

// Update handles PUT/PATCH /tickets/:id. The customer field in the
// payload is dropped; manager may be reassigned or cleared.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.Update(c.Context(), principal, c.Params("id"), service.TicketUpdateInput{
		Header:    req.Header,
		Body:      req.Body,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"result": dto.NewTicketFull(ticket)})
}

// Destroy handles DELETE /tickets/:id.
func (h *TicketsHandler) Destroy(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.tickets.Destroy(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).JSON(fiber.Map{"result": "The ticket has been deleted"})
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parsePositiveInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
