package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redis/go-redis/v9"

	"github.com/caretab/clinic_backend/internal/repo"
	entrecord "github.com/caretab/clinic_backend/internal/repo/medicalrecord"
	entpatient "github.com/caretab/clinic_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRecordRequest struct {
	PatientID    int
	VisitDate    time.Time
	Diagnosis    string
	Prescription string
}

// UpdateRecordRequest carries a partial patch: nil means "leave as is".
type UpdateRecordRequest struct {
	PatientID    *int
	VisitDate    *time.Time
	Diagnosis    *string
	Prescription *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.MedicalRecord, error)
	Create(ctx context.Context, req CreateRecordRequest) (*repo.MedicalRecord, error)
	GetByID(ctx context.Context, id int) (*repo.MedicalRecord, error)
	Update(ctx context.Context, id int, req UpdateRecordRequest) (*repo.MedicalRecord, error)
	Delete(ctx context.Context, id int) error

	// ForPatient returns the patient's records newest visit first,
	// refreshing the cache entry as a side effect.
	ForPatient(ctx context.Context, patientID int) ([]*repo.MedicalRecord, error)
}

type recordService struct {
	db       *repo.Client
	rdb      *redis.Client
	cacheTTL time.Duration
}

func New(db *repo.Client, rdb *redis.Client, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &recordService{db: db, rdb: rdb, cacheTTL: cacheTTL}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *recordService) List(ctx context.Context) ([]*repo.MedicalRecord, error) {
	records, err := s.db.MedicalRecord.Query().
		WithPatient().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (s *recordService) Create(ctx context.Context, req CreateRecordRequest) (*repo.MedicalRecord, error) {
	if err := s.requirePatient(ctx, req.PatientID); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	rec, err := tx.MedicalRecord.Create().
		SetPatientID(req.PatientID).
		SetVisitDate(req.VisitDate).
		SetDiagnosis(req.Diagnosis).
		SetPrescription(req.Prescription).
		Save(ctx)
	if err != nil {
		slog.Error("record create failed", "patient_id", req.PatientID, "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	InvalidateCache(ctx, s.rdb, req.PatientID)
	return rec, nil
}

func (s *recordService) GetByID(ctx context.Context, id int) (*repo.MedicalRecord, error) {
	rec, err := s.db.MedicalRecord.Query().
		Where(entrecord.ID(id)).
		WithPatient().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			slog.Warn("medical record not found", "record_id", id)
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, id int, req UpdateRecordRequest) (*repo.MedicalRecord, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientID != nil && *req.PatientID != rec.PatientID {
		if err := s.requirePatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u := tx.MedicalRecord.UpdateOneID(id)
	if req.PatientID != nil {
		u = u.SetPatientID(*req.PatientID)
	}
	if req.VisitDate != nil {
		u = u.SetVisitDate(*req.VisitDate)
	}
	if req.Diagnosis != nil {
		u = u.SetDiagnosis(*req.Diagnosis)
	}
	if req.Prescription != nil {
		u = u.SetPrescription(*req.Prescription)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		slog.Error("record update failed", "record_id", id, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Drop the cached list of the owning patient; when the record moved
	// between patients both lists changed.
	InvalidateCache(ctx, s.rdb, rec.PatientID)
	if req.PatientID != nil && *req.PatientID != rec.PatientID {
		InvalidateCache(ctx, s.rdb, *req.PatientID)
	}

	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, id int) error {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.db.MedicalRecord.Delete().
		Where(entrecord.ID(id)).
		Exec(ctx)
	if err != nil {
		slog.Error("record delete failed", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}
	if n == 0 {
		// The row existed when we looked it up just above.
		slog.Error("record delete affected no rows", "record_id", id)
		return ErrDeleteNoEffect
	}

	InvalidateCache(ctx, s.rdb, rec.PatientID)
	return nil
}

func (s *recordService) ForPatient(ctx context.Context, patientID int) ([]*repo.MedicalRecord, error) {
	// Invalidate first so this path always serves freshly-read data,
	// then repopulate for callers arriving within the TTL window.
	InvalidateCache(ctx, s.rdb, patientID)

	records, err := s.db.MedicalRecord.Query().
		Where(entrecord.PatientID(patientID)).
		Order(entrecord.ByVisitDate(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient records: %w", err)
	}

	storeCache(ctx, s.rdb, s.cacheTTL, patientID, records)
	return records, nil
}

func (s *recordService) requirePatient(ctx context.Context, patientID int) error {
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return ErrPatientMissing
	}
	return nil
}
