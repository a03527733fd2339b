package controller

import (
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVoiceController interface {
	RegisterRoutes(r fiber.Router)
	Usage(ctx *fiber.Ctx) error
}

type voiceController struct {
	consumerService service.IConsumerService
}

func NewVoiceController(consumerService service.IConsumerService) IVoiceController {
	return &voiceController{
		consumerService: consumerService,
	}
}

func (c *voiceController) RegisterRoutes(r fiber.Router) {
	r.Get("voice/usage", c.Usage)
}

func (c *voiceController) Usage(ctx *fiber.Ctx) error {
	return ctx.JSON(c.consumerService.UsageReport())
}
