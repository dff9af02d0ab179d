package controller

import (
	"github.com/gofiber/fiber/v2"
)

const greeting = "<h1>Hello World!</h1>"

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type homeController struct{}

func NewHomeController() IHomeController {
	return &homeController{}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
}

func (c *homeController) Index(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")
	return ctx.SendString(greeting)
}
