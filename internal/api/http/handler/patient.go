package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/service/patient"
	"github.com/caretab/clinic_backend/internal/service/record"
	"github.com/caretab/clinic_backend/pkg/validate"
)

type PatientHandler struct {
	svc     patient.Service
	records record.Service
}

func NewPatientHandler(svc patient.Service, records record.Service) *PatientHandler {
	return &PatientHandler{svc: svc, records: records}
}

func idParam(c fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	patients, err := h.svc.List(c.Context())
	if err != nil {
		return mapPatientError(c, err)
	}
	if patients == nil {
		patients = []*repo.Patient{}
	}
	return ok(c, patients)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName string `json:"first_name" validate:"required,max=255"`
		LastName  string `json:"last_name" validate:"required,max=255"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if fields := validate.Struct(body); fields != nil {
		return unprocessable(c, fields)
	}

	p, err := h.svc.Create(c.Context(), patient.CreatePatientRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PUT|PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName *string `json:"first_name" validate:"omitnil,min=1,max=255"`
		LastName  *string `json:"last_name" validate:"omitnil,min=1,max=255"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if fields := validate.Struct(body); fields != nil {
		return unprocessable(c, fields)
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdatePatientRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// GET /patients/:id/records
//
// Always serves a fresh read: the cached list is dropped, rebuilt from
// storage and re-cached for later callers. An unknown patient simply has
// zero records.
func (h *PatientHandler) Records(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	records, err := h.records.ForPatient(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if records == nil {
		records = []*repo.MedicalRecord{}
	}
	return ok(c, records)
}
