package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/pkg/validate"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

// unprocessable returns the field-error map itself as the 422 body.
func unprocessable(c fiber.Ctx, fields validate.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fields)
}

// serverError surfaces the raw failure detail alongside a stable message.
func serverError(c fiber.Ctx, msg string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msg,
		"error":   err.Error(),
	})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
