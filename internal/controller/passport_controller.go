package controller

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPassportController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	Locations(ctx *fiber.Ctx) error
}

type passportController struct {
	passportService service.IPassportService
}

func NewPassportController(passportService service.IPassportService) IPassportController {
	return &passportController{
		passportService: passportService,
	}
}

func (c *passportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/passport")
	h.Post("start", c.Start)
	h.Get("locations", c.Locations)
	h.Get(":id", c.Get)
	h.Post(":id/next", c.Next)
	h.Post(":id/back", c.Back)
}

func (c *passportController) Start(ctx *fiber.Ctx) error {
	res := c.passportService.Start(requestLanguage(ctx))
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *passportController) Get(ctx *fiber.Ctx) error {
	res, err := c.passportService.Get(requestLanguage(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *passportController) Next(ctx *fiber.Ctx) error {
	var req dto.PassportAdvanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.passportService.Next(requestLanguage(ctx), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *passportController) Back(ctx *fiber.Ctx) error {
	res, err := c.passportService.Back(requestLanguage(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *passportController) Locations(ctx *fiber.Ctx) error {
	return ctx.JSON(c.passportService.Locations(requestLanguage(ctx)))
}
