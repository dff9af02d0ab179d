package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// noteID copies the path parameter; fiber reuses its buffer after the handler returns.
func noteID(ctx *fiber.Ctx) string {
	return utils.CopyString(ctx.Params("id"))
}

// parseBody leaves out untouched when the request has no body, so a bare
// POST is reported as a missing field rather than a parse failure.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(out); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (c *noteController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.noteService.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	res, err := c.noteService.Show(ctx.UserContext(), noteID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = noteID(ctx)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	if err := c.noteService.Delete(ctx.UserContext(), noteID(ctx)); err != nil {
		return err
	}

	ctx.Status(fiber.StatusNoContent)
	return nil
}
