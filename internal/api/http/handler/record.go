package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/service/record"
	"github.com/caretab/clinic_backend/pkg/validate"
)

const visitDateLayout = "2006-01-02"

type RecordHandler struct {
	svc record.Service
}

func NewRecordHandler(svc record.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Medical record CRUD
// ---------------------------------------------------------------------------

// GET /records
func (h *RecordHandler) List(c fiber.Ctx) error {
	records, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	if records == nil {
		records = []*repo.MedicalRecord{}
	}
	return ok(c, records)
}

// POST /records
func (h *RecordHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID    int    `json:"patient_id" validate:"required,gt=0"`
		VisitDate    string `json:"visit_date" validate:"required,datetime=2006-01-02"`
		Diagnosis    string `json:"diagnosis" validate:"required"`
		Prescription string `json:"prescription" validate:"required"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if fields := validate.Struct(body); fields != nil {
		return unprocessable(c, fields)
	}

	visitDate, err := time.Parse(visitDateLayout, body.VisitDate)
	if err != nil {
		return unprocessable(c, validate.FieldErrors{
			"visit_date": {"must be a valid date in YYYY-MM-DD format"},
		})
	}

	rec, err := h.svc.Create(c.Context(), record.CreateRecordRequest{
		PatientID:    body.PatientID,
		VisitDate:    visitDate,
		Diagnosis:    body.Diagnosis,
		Prescription: body.Prescription,
	})
	if err != nil {
		if errors.Is(err, record.ErrPatientMissing) {
			return unprocessable(c, validate.FieldErrors{
				"patient_id": {record.ErrPatientMissing.Error()},
			})
		}
		return serverError(c, "could not create medical record", err)
	}

	return created(c, rec)
}

// GET /records/:id
func (h *RecordHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	rec, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, record.ErrRecordNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, rec)
}

// PUT|PATCH /records/:id
func (h *RecordHandler) Update(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	var body struct {
		PatientID    *int    `json:"patient_id" validate:"omitnil,gt=0"`
		VisitDate    *string `json:"visit_date" validate:"omitnil,datetime=2006-01-02"`
		Diagnosis    *string `json:"diagnosis" validate:"omitnil,min=1"`
		Prescription *string `json:"prescription" validate:"omitnil,min=1"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if fields := validate.Struct(body); fields != nil {
		return unprocessable(c, fields)
	}

	req := record.UpdateRecordRequest{
		PatientID:    body.PatientID,
		Diagnosis:    body.Diagnosis,
		Prescription: body.Prescription,
	}
	if body.VisitDate != nil {
		visitDate, err := time.Parse(visitDateLayout, *body.VisitDate)
		if err != nil {
			return unprocessable(c, validate.FieldErrors{
				"visit_date": {"must be a valid date in YYYY-MM-DD format"},
			})
		}
		req.VisitDate = &visitDate
	}

	rec, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, record.ErrRecordNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, record.ErrPatientMissing):
			return unprocessable(c, validate.FieldErrors{
				"patient_id": {record.ErrPatientMissing.Error()},
			})
		default:
			return serverError(c, "could not update medical record", err)
		}
	}

	return ok(c, rec)
}

// DELETE /records/:id
func (h *RecordHandler) Delete(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, record.ErrRecordNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "could not delete medical record", err)
	}

	return noContent(c)
}
