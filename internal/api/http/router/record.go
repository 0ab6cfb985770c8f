package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/api/http/handler"
	"github.com/caretab/clinic_backend/internal/api/http/middleware"
)

func (r *Router) registerRecordRoutes(app *fiber.App, rh *handler.RecordHandler) {
	records := app.Group("/records")

	records.Get("/", rh.List)
	records.Post("/", rh.Create)

	rec := records.Group("/:id")
	rec.Get("/", rh.Get)

	// Update and delete are called cross-origin from the records screen,
	// so every response on these routes carries the permissive header set.
	rec.Put("/", rh.Update, middleware.RecordMutationCORS("PUT, PATCH"))
	rec.Patch("/", rh.Update, middleware.RecordMutationCORS("PUT, PATCH"))
	rec.Delete("/", rh.Delete, middleware.RecordMutationCORS("DELETE"))
	rec.Options("/", middleware.RecordPreflight("PUT, PATCH, DELETE"))
}
