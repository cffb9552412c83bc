package controller

import (
	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/pkg/serverutils"
	"github.com/SouLSoniC07/AI-Tutor/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAskController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type askController struct {
	tutorService service.ITutorService
}

func NewAskController(tutorService service.ITutorService) IAskController {
	return &askController{
		tutorService: tutorService,
	}
}

func (c *askController) RegisterRoutes(r fiber.Router) {
	r.Post("/ask", c.Ask)
}

// Ask keeps the chat contract of the endpoint: a well-formed question always
// gets a 200, even when nothing in the knowledge base answers it.
func (c *askController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	res, err := c.tutorService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
