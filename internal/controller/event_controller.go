package controller

import (
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) IEventController {
	return &eventController{
		eventService: eventService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/events")
	h.Get("", c.List)
	h.Get(":id", c.Detail)
}

func (c *eventController) List(ctx *fiber.Ctx) error {
	query, err := catalogQuery(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(c.eventService.List(requestLanguage(ctx), query))
}

func (c *eventController) Detail(ctx *fiber.Ctx) error {
	res, err := c.eventService.Detail(requestLanguage(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
