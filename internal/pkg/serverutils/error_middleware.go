package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware keeps panics and stray errors from escaping the app.
// Handler-level errors that were not already mapped to a status become 500s
// with a generic JSON body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"status":  "error",
					"message": fmt.Sprintf("internal error: %v", r),
				})
			}
		}()

		if err := ctx.Next(); err != nil {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			return ctx.Status(code).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return nil
	}
}
