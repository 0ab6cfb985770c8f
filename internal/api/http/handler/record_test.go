package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/service/record"
)

func newRecordApp(svc record.Service) *fiber.App {
	app := fiber.New()
	h := NewRecordHandler(svc)
	app.Get("/records", h.List)
	app.Post("/records", h.Create)
	app.Get("/records/:id", h.Get)
	app.Put("/records/:id", h.Update)
	app.Delete("/records/:id", h.Delete)
	return app
}

func TestRecordCreate_Valid(t *testing.T) {
	app := newRecordApp(&stubRecordService{})

	resp, err := app.Test(jsonRequest("POST", "/records", map[string]any{
		"patient_id":   1,
		"visit_date":   "2024-03-01",
		"diagnosis":    "flu",
		"prescription": "rest",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		ID        int `json:"id"`
		PatientID int `json:"patient_id"`
	}
	decodeBody(t, resp, &body)
	if body.PatientID != 1 {
		t.Errorf("patient_id = %d, want 1", body.PatientID)
	}
}

func TestRecordCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{
			name: "missing patient id",
			body: map[string]any{
				"visit_date": "2024-03-01", "diagnosis": "flu", "prescription": "rest",
			},
			field: "patient_id",
		},
		{
			name: "malformed visit date",
			body: map[string]any{
				"patient_id": 1, "visit_date": "03/01/2024", "diagnosis": "flu", "prescription": "rest",
			},
			field: "visit_date",
		},
		{
			name: "missing diagnosis",
			body: map[string]any{
				"patient_id": 1, "visit_date": "2024-03-01", "prescription": "rest",
			},
			field: "diagnosis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRecordApp(&stubRecordService{})

			resp, err := app.Test(jsonRequest("POST", "/records", tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", resp.StatusCode)
			}

			var fields map[string][]string
			decodeBody(t, resp, &fields)
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected %s in error map, got %v", tt.field, fields)
			}
		})
	}
}

func TestRecordCreate_UnknownPatientReturns422(t *testing.T) {
	app := newRecordApp(&stubRecordService{err: record.ErrPatientMissing})

	resp, err := app.Test(jsonRequest("POST", "/records", map[string]any{
		"patient_id":   999,
		"visit_date":   "2024-03-01",
		"diagnosis":    "flu",
		"prescription": "rest",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var fields map[string][]string
	decodeBody(t, resp, &fields)
	msgs, ok := fields["patient_id"]
	if !ok || len(msgs) == 0 {
		t.Fatalf("expected patient_id in error map, got %v", fields)
	}
	if msgs[0] != record.ErrPatientMissing.Error() {
		t.Errorf("message = %q, want %q", msgs[0], record.ErrPatientMissing.Error())
	}
}

func TestRecordGet_NotFound(t *testing.T) {
	app := newRecordApp(&stubRecordService{err: record.ErrRecordNotFound})

	resp, err := app.Test(httptest.NewRequest("GET", "/records/99", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRecordUpdate_PartialPatch(t *testing.T) {
	app := newRecordApp(&stubRecordService{})

	resp, err := app.Test(jsonRequest("PUT", "/records/5", map[string]any{
		"diagnosis": "influenza A",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Diagnosis    string `json:"diagnosis"`
		Prescription string `json:"prescription"`
	}
	decodeBody(t, resp, &body)
	if body.Diagnosis != "influenza A" {
		t.Errorf("diagnosis = %q, want influenza A", body.Diagnosis)
	}
	if body.Prescription != "rest" {
		t.Errorf("prescription changed to %q on partial patch", body.Prescription)
	}
}

func TestRecordUpdate_BadDateReturns422(t *testing.T) {
	app := newRecordApp(&stubRecordService{})

	resp, err := app.Test(jsonRequest("PUT", "/records/5", map[string]any{
		"visit_date": "not-a-date",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestRecordDelete(t *testing.T) {
	tests := []struct {
		name   string
		svcErr error
		status int
	}{
		{"existing record", nil, fiber.StatusNoContent},
		{"missing record", record.ErrRecordNotFound, fiber.StatusNotFound},
		{"storage fault", record.ErrDeleteNoEffect, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRecordApp(&stubRecordService{err: tt.svcErr})

			resp, err := app.Test(httptest.NewRequest("DELETE", "/records/5", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}
