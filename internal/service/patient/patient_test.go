package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/caretab/clinic_backend/internal/repo"
	"github.com/caretab/clinic_backend/internal/repo/enttest"
	entrecord "github.com/caretab/clinic_backend/internal/repo/medicalrecord"
	"github.com/caretab/clinic_backend/internal/service/record"
)

func newTestService(t *testing.T) (Service, *repo.Client, *miniredis.Miniredis) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return New(client, rdb), client, mr
}

func TestCreateAndGet(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePatientRequest{FirstName: "Ada", LastName: "Lovelace"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if got.FirstName != "Ada" || got.LastName != "Lovelace" {
		t.Errorf("got %s %s, want Ada Lovelace", got.FirstName, got.LastName)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePatientRequest{FirstName: "Ada", LastName: "Lovelace"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	newFirst := "Augusta"
	updated, err := svc.Update(ctx, p.ID, UpdatePatientRequest{FirstName: &newFirst})
	if err != nil {
		t.Fatalf("update patient: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Errorf("FirstName = %q, want Augusta", updated.FirstName)
	}
	if updated.LastName != "Lovelace" {
		t.Errorf("LastName changed to %q on partial patch", updated.LastName)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	name := "Ghost"
	_, err := svc.Update(context.Background(), 404, UpdatePatientRequest{FirstName: &name})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDelete_RemovesRecordsAndCache(t *testing.T) {
	svc, client, mr := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePatientRequest{FirstName: "Ada", LastName: "Lovelace"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	visit, _ := time.Parse("2006-01-02", "2024-01-01")
	if _, err := client.MedicalRecord.Create().
		SetPatientID(p.ID).
		SetVisitDate(visit).
		SetDiagnosis("flu").
		SetPrescription("rest").
		Save(ctx); err != nil {
		t.Fatalf("create record: %v", err)
	}

	mr.Set(record.CacheKey(p.ID), `[]`)

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("patient still present after delete: %v", err)
	}

	n, err := client.MedicalRecord.Query().
		Where(entrecord.PatientID(p.ID)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	if n != 0 {
		t.Errorf("%d records outlived their patient", n)
	}

	if mr.Exists(record.CacheKey(p.ID)) {
		t.Error("cached records list survived patient deletion")
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}
