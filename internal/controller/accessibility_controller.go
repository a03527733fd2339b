package controller

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/pkg/serverutils"
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAccessibilityController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Adjust(ctx *fiber.Ctx) error
}

type accessibilityController struct {
	accessibilityService service.IAccessibilityService
}

func NewAccessibilityController(accessibilityService service.IAccessibilityService) IAccessibilityController {
	return &accessibilityController{
		accessibilityService: accessibilityService,
	}
}

func (c *accessibilityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Get("accessibility", c.Get)
	h.Post("accessibility", c.Adjust)
}

func (c *accessibilityController) Get(ctx *fiber.Ctx) error {
	res := c.accessibilityService.Get(sessionId(ctx))
	return ctx.JSON(res)
}

func (c *accessibilityController) Adjust(ctx *fiber.Ctx) error {
	var req dto.AccessibilityAdjustRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.accessibilityService.Adjust(sessionId(ctx), &req)
	return ctx.JSON(res)
}

// sessionId identifies the anonymous visitor session. The frontend sends it
// back on every call; the first call without one gets a fresh id in the
// response body.
func sessionId(ctx *fiber.Ctx) string {
	if id := ctx.Get("X-Session-Id"); id != "" {
		return id
	}
	if id := ctx.Query("session_id"); id != "" {
		return id
	}
	return uuid.New().String()
}
