package middleware

import "github.com/gofiber/fiber/v3"

// The record mutation endpoints are called from a browser origin different
// from the API's, so their responses carry a fixed permissive header set no
// matter how the request turns out.

func RecordMutationCORS(allowMethods string) fiber.Handler {
	return func(c fiber.Ctx) error {
		setRecordCORSHeaders(c, allowMethods)
		return c.Next()
	}
}

// RecordPreflight answers the OPTIONS probe browsers send before a
// cross-origin PUT/PATCH/DELETE.
func RecordPreflight(allowMethods string) fiber.Handler {
	return func(c fiber.Ctx) error {
		setRecordCORSHeaders(c, allowMethods)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func setRecordCORSHeaders(c fiber.Ctx, allowMethods string) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", allowMethods+", OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
}
