package record

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (Service, *repo.Client, *miniredis.Miniredis) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	rdb, mr := newTestRedis(t)
	return New(client, rdb, DefaultCacheTTL), client, mr
}

func mustCreatePatient(t *testing.T, client *repo.Client, first, last string) *repo.Patient {
	t.Helper()
	p, err := client.Patient.Create().
		SetFirstName(first).
		SetLastName(last).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func visitOn(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return d
}

func TestCreate_RequiresExistingPatient(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateRecordRequest{
		PatientID:    999,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if !errors.Is(err, ErrPatientMissing) {
		t.Errorf("expected ErrPatientMissing, got %v", err)
	}
}

func TestCreate_InvalidatesCachedList(t *testing.T) {
	svc, client, mr := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	mr.Set(CacheKey(p.ID), `[]`)

	_, err := svc.Create(context.Background(), CreateRecordRequest{
		PatientID:    p.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	if mr.Exists(CacheKey(p.ID)) {
		t.Error("stale cached list survived record creation")
	}
}

func TestForPatient_NewestVisitFirst(t *testing.T) {
	svc, client, mr := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	ctx := context.Background()
	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		if _, err := svc.Create(ctx, CreateRecordRequest{
			PatientID:    p.ID,
			VisitDate:    visitOn(t, date),
			Diagnosis:    "visit " + date,
			Prescription: "rx",
		}); err != nil {
			t.Fatalf("create record for %s: %v", date, err)
		}
	}

	records, err := svc.ForPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("ForPatient: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, rec := range records {
		if got := rec.VisitDate.Format("2006-01-02"); got != want[i] {
			t.Errorf("records[%d].VisitDate = %s, want %s", i, got, want[i])
		}
	}

	if !mr.Exists(CacheKey(p.ID)) {
		t.Error("records list was not re-cached after the read")
	}
}

func TestForPatient_CacheDoesNotMaskUpdates(t *testing.T) {
	svc, client, _ := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	ctx := context.Background()
	rec, err := svc.Create(ctx, CreateRecordRequest{
		PatientID:    p.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	// Populate the cache, mutate, read again within the TTL window.
	if _, err := svc.ForPatient(ctx, p.ID); err != nil {
		t.Fatalf("ForPatient: %v", err)
	}

	newDiagnosis := "influenza A"
	if _, err := svc.Update(ctx, rec.ID, UpdateRecordRequest{Diagnosis: &newDiagnosis}); err != nil {
		t.Fatalf("update record: %v", err)
	}

	records, err := svc.ForPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("ForPatient after update: %v", err)
	}
	if len(records) != 1 || records[0].Diagnosis != newDiagnosis {
		t.Errorf("records endpoint served stale diagnosis: %+v", records)
	}
}

func TestForPatient_UnknownPatientHasNoRecords(t *testing.T) {
	svc, _, _ := newTestService(t)

	records, err := svc.ForPatient(context.Background(), 12345)
	if err != nil {
		t.Fatalf("ForPatient: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty list, got %d records", len(records))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	svc, client, _ := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	ctx := context.Background()
	rec, err := svc.Create(ctx, CreateRecordRequest{
		PatientID:    p.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	newDiagnosis := "influenza A"
	updated, err := svc.Update(ctx, rec.ID, UpdateRecordRequest{Diagnosis: &newDiagnosis})
	if err != nil {
		t.Fatalf("update record: %v", err)
	}

	if updated.Diagnosis != newDiagnosis {
		t.Errorf("Diagnosis = %q, want %q", updated.Diagnosis, newDiagnosis)
	}
	if updated.Prescription != "rest" {
		t.Errorf("Prescription changed to %q on partial patch", updated.Prescription)
	}
	if updated.PatientID != p.ID {
		t.Errorf("PatientID changed to %d on partial patch", updated.PatientID)
	}
}

func TestUpdate_MoveBetweenPatientsDropsBothCaches(t *testing.T) {
	svc, client, mr := newTestService(t)
	p1 := mustCreatePatient(t, client, "Ada", "Lovelace")
	p2 := mustCreatePatient(t, client, "Grace", "Hopper")

	ctx := context.Background()
	rec, err := svc.Create(ctx, CreateRecordRequest{
		PatientID:    p1.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	mr.Set(CacheKey(p1.ID), `[]`)
	mr.Set(CacheKey(p2.ID), `[]`)

	updated, err := svc.Update(ctx, rec.ID, UpdateRecordRequest{PatientID: &p2.ID})
	if err != nil {
		t.Fatalf("update record: %v", err)
	}
	if updated.PatientID != p2.ID {
		t.Errorf("PatientID = %d, want %d", updated.PatientID, p2.ID)
	}

	if mr.Exists(CacheKey(p1.ID)) {
		t.Error("old patient's cached list survived the move")
	}
	if mr.Exists(CacheKey(p2.ID)) {
		t.Error("new patient's cached list survived the move")
	}
}

func TestUpdate_UnknownTargetPatient(t *testing.T) {
	svc, client, _ := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	ctx := context.Background()
	rec, err := svc.Create(ctx, CreateRecordRequest{
		PatientID:    p.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	missing := 999
	_, err = svc.Update(ctx, rec.ID, UpdateRecordRequest{PatientID: &missing})
	if !errors.Is(err, ErrPatientMissing) {
		t.Errorf("expected ErrPatientMissing, got %v", err)
	}
}

func TestDelete_SecondDeleteReportsNotFound(t *testing.T) {
	svc, client, mr := newTestService(t)
	p := mustCreatePatient(t, client, "Ada", "Lovelace")

	ctx := context.Background()
	rec, err := svc.Create(ctx, CreateRecordRequest{
		PatientID:    p.ID,
		VisitDate:    visitOn(t, "2024-01-01"),
		Diagnosis:    "flu",
		Prescription: "rest",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	mr.Set(CacheKey(p.ID), `[]`)

	if err := svc.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if mr.Exists(CacheKey(p.ID)) {
		t.Error("cached list survived record deletion")
	}

	if err := svc.Delete(ctx, rec.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("second delete: expected ErrRecordNotFound, got %v", err)
	}
}
