package controller

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Services(ctx *fiber.Ctx) error
	VitalInfo(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("services", c.Services)
	r.Get("vital", c.VitalInfo)
}

func (c *catalogController) Services(ctx *fiber.Ctx) error {
	query, err := catalogQuery(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(c.catalogService.Services(requestLanguage(ctx), query))
}

func (c *catalogController) VitalInfo(ctx *fiber.Ctx) error {
	query, err := catalogQuery(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(c.catalogService.VitalInfo(requestLanguage(ctx), query))
}

func catalogQuery(ctx *fiber.Ctx) (dto.CatalogQuery, error) {
	var query dto.CatalogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return query, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return query, nil
}
