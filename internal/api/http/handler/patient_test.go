package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/service/patient"
	"github.com/caretab/clinic_backend/internal/service/record"
)

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubPatientService struct {
	patients []*repo.Patient
	err      error
}

func (s *stubPatientService) List(ctx context.Context) ([]*repo.Patient, error) {
	return s.patients, s.err
}

func (s *stubPatientService) Create(ctx context.Context, req patient.CreatePatientRequest) (*repo.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repo.Patient{ID: 1, FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (s *stubPatientService) GetByID(ctx context.Context, id int) (*repo.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repo.Patient{ID: id, FirstName: "Ada", LastName: "Lovelace"}, nil
}

func (s *stubPatientService) Update(ctx context.Context, id int, req patient.UpdatePatientRequest) (*repo.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := &repo.Patient{ID: id, FirstName: "Ada", LastName: "Lovelace"}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	return p, nil
}

func (s *stubPatientService) Delete(ctx context.Context, id int) error {
	return s.err
}

type stubRecordService struct {
	records []*repo.MedicalRecord
	err     error
}

func (s *stubRecordService) List(ctx context.Context) ([]*repo.MedicalRecord, error) {
	return s.records, s.err
}

func (s *stubRecordService) Create(ctx context.Context, req record.CreateRecordRequest) (*repo.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repo.MedicalRecord{
		ID:           1,
		PatientID:    req.PatientID,
		VisitDate:    req.VisitDate,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
	}, nil
}

func (s *stubRecordService) GetByID(ctx context.Context, id int) (*repo.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &repo.MedicalRecord{ID: id, PatientID: 1, Diagnosis: "flu", Prescription: "rest"}, nil
}

func (s *stubRecordService) Update(ctx context.Context, id int, req record.UpdateRecordRequest) (*repo.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec := &repo.MedicalRecord{ID: id, PatientID: 1, Diagnosis: "flu", Prescription: "rest"}
	if req.PatientID != nil {
		rec.PatientID = *req.PatientID
	}
	if req.VisitDate != nil {
		rec.VisitDate = *req.VisitDate
	}
	if req.Diagnosis != nil {
		rec.Diagnosis = *req.Diagnosis
	}
	if req.Prescription != nil {
		rec.Prescription = *req.Prescription
	}
	return rec, nil
}

func (s *stubRecordService) Delete(ctx context.Context, id int) error {
	return s.err
}

func (s *stubRecordService) ForPatient(ctx context.Context, patientID int) ([]*repo.MedicalRecord, error) {
	return s.records, s.err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newPatientApp(psvc patient.Service, rsvc record.Service) *fiber.App {
	app := fiber.New()
	h := NewPatientHandler(psvc, rsvc)
	app.Get("/patients", h.List)
	app.Post("/patients", h.Create)
	app.Get("/patients/:id", h.Get)
	app.Put("/patients/:id", h.Update)
	app.Delete("/patients/:id", h.Delete)
	app.Get("/patients/:id/records", h.Records)
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestPatientCreate_Valid(t *testing.T) {
	app := newPatientApp(&stubPatientService{}, &stubRecordService{})

	resp, err := app.Test(jsonRequest("POST", "/patients", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		ID        int    `json:"id"`
		FirstName string `json:"first_name"`
	}
	decodeBody(t, resp, &body)
	if body.FirstName != "Ada" {
		t.Errorf("first_name = %q, want Ada", body.FirstName)
	}
}

func TestPatientCreate_MissingFieldsReturns422(t *testing.T) {
	app := newPatientApp(&stubPatientService{}, &stubRecordService{})

	resp, err := app.Test(jsonRequest("POST", "/patients", map[string]string{
		"last_name": "Lovelace",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var fields map[string][]string
	decodeBody(t, resp, &fields)
	if _, ok := fields["first_name"]; !ok {
		t.Errorf("expected first_name in error map, got %v", fields)
	}
}

func TestPatientGet_NotFound(t *testing.T) {
	app := newPatientApp(&stubPatientService{err: patient.ErrPatientNotFound}, &stubRecordService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/patients/99", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPatientGet_BadID(t *testing.T) {
	app := newPatientApp(&stubPatientService{}, &stubRecordService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/patients/abc", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPatientDelete_NoContent(t *testing.T) {
	app := newPatientApp(&stubPatientService{}, &stubRecordService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/patients/1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestPatientList_EmptyIsJSONArray(t *testing.T) {
	app := newPatientApp(&stubPatientService{}, &stubRecordService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/patients", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if string(bytes.TrimSpace(raw)) != "[]" {
		t.Errorf("body = %q, want []", raw)
	}
}

func TestPatientRecords_ListsRecords(t *testing.T) {
	visit, _ := time.Parse("2006-01-02", "2024-03-01")
	rsvc := &stubRecordService{records: []*repo.MedicalRecord{
		{ID: 1, PatientID: 7, VisitDate: visit, Diagnosis: "flu", Prescription: "rest"},
	}}
	app := newPatientApp(&stubPatientService{}, rsvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/patients/7/records", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body []map[string]any
	decodeBody(t, resp, &body)
	if len(body) != 1 {
		t.Errorf("expected 1 record, got %d", len(body))
	}
}
