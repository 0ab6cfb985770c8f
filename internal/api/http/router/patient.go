package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(app *fiber.App, ph *handler.PatientHandler) {
	patients := app.Group("/patients")

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.Get)
	p.Put("/", ph.Update)
	p.Patch("/", ph.Update)
	p.Delete("/", ph.Delete)

	p.Get("/records", ph.Records)
}
