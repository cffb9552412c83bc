package controller

import (
	"errors"

	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Serve(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Get("/files", c.List)
	r.Get("/file/:filename", c.Serve)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.UploadResponse{
			Status:  "error",
			Message: "No file uploaded",
		})
	}

	subject := ctx.FormValue("subject")
	topic := ctx.FormValue("topic")

	if _, err := c.documentService.Upload(ctx.Context(), fileHeader, subject, topic); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	return ctx.JSON(dto.UploadResponse{Status: "ok"})
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(c.documentService.List(ctx.Context()))
}

func (c *documentController) Serve(ctx *fiber.Ctx) error {
	path, err := c.documentService.Resolve(ctx.Context(), ctx.Params("filename"))
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).SendString("File not found")
		}
		return err
	}
	return ctx.SendFile(path)
}
