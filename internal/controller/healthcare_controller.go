package controller

import (
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthcareController interface {
	RegisterRoutes(r fiber.Router)
	Clinics(ctx *fiber.Ctx) error
	Hospitals(ctx *fiber.Ctx) error
	News(ctx *fiber.Ctx) error
	AppointmentOptions(ctx *fiber.Ctx) error
}

type healthcareController struct {
	healthcareService service.IHealthcareService
	catalogService    service.ICatalogService
}

func NewHealthcareController(healthcareService service.IHealthcareService, catalogService service.ICatalogService) IHealthcareController {
	return &healthcareController{
		healthcareService: healthcareService,
		catalogService:    catalogService,
	}
}

func (c *healthcareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/healthcare")
	h.Get("clinics", c.Clinics)
	h.Get("hospitals", c.Hospitals)
	h.Get("news", c.News)
	h.Get("appointment-options", c.AppointmentOptions)
}

func (c *healthcareController) Clinics(ctx *fiber.Ctx) error {
	res := c.healthcareService.Clinics(requestLanguage(ctx), ctx.Query("area"))
	return ctx.JSON(res)
}

func (c *healthcareController) Hospitals(ctx *fiber.Ctx) error {
	res := c.healthcareService.Hospitals(requestLanguage(ctx), ctx.Query("area"))
	return ctx.JSON(res)
}

func (c *healthcareController) News(ctx *fiber.Ctx) error {
	query, err := catalogQuery(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(c.catalogService.HealthNews(requestLanguage(ctx), query))
}

func (c *healthcareController) AppointmentOptions(ctx *fiber.Ctx) error {
	res := c.healthcareService.AppointmentOptions(requestLanguage(ctx))
	return ctx.JSON(res)
}
