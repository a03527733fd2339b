package controller

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/pkg/serverutils"
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistanceController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type assistanceController struct {
	assistanceService service.IAssistanceService
}

func NewAssistanceController(assistanceService service.IAssistanceService) IAssistanceController {
	return &assistanceController{
		assistanceService: assistanceService,
	}
}

func (c *assistanceController) RegisterRoutes(r fiber.Router) {
	r.Post("assistance", c.Submit)
}

func (c *assistanceController) Submit(ctx *fiber.Ctx) error {
	var req dto.AssistanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistanceService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assistance request received", res))
}
