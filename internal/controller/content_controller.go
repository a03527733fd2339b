package controller

import (
	"community-connect-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Languages(ctx *fiber.Ctx) error
	Navigation(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
}

func NewContentController(contentService service.IContentService) IContentController {
	return &contentController{
		contentService: contentService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("content/languages", c.Languages)
	r.Get("navigation", c.Navigation)
}

func (c *contentController) Languages(ctx *fiber.Ctx) error {
	res := c.contentService.Languages()
	return ctx.JSON(res)
}

func (c *contentController) Navigation(ctx *fiber.Ctx) error {
	res := c.contentService.Navigation(requestLanguage(ctx))
	return ctx.JSON(res)
}

// requestLanguage reads the portal language for a request: explicit ?lang=
// wins, then Accept-Language.
func requestLanguage(ctx *fiber.Ctx) string {
	if lang := ctx.Query("lang"); lang != "" {
		return lang
	}
	return ctx.Get(fiber.HeaderAcceptLanguage)
}
