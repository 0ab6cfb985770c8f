package patient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/caretab/clinic_backend/internal/repo"
	entpatient "github.com/caretab/clinic_backend/internal/repo/patient"
	entrecord "github.com/caretab/clinic_backend/internal/repo/medicalrecord"
	"github.com/caretab/clinic_backend/internal/service/record"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	FirstName string
	LastName  string
}

// UpdatePatientRequest carries a partial patch: nil means "leave as is".
type UpdatePatientRequest struct {
	FirstName *string
	LastName  *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.Patient, error)
	Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, id int) (*repo.Patient, error)
	Update(ctx context.Context, id int, req UpdatePatientRequest) (*repo.Patient, error)
	Delete(ctx context.Context, id int) error
}

type patientService struct {
	db  *repo.Client
	rdb *redis.Client
}

func New(db *repo.Client, rdb *redis.Client) Service {
	return &patientService{db: db, rdb: rdb}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *patientService) List(ctx context.Context) ([]*repo.Patient, error) {
	patients, err := s.db.Patient.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error) {
	p, err := s.db.Patient.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, id int) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, id int, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)
	if req.FirstName != nil {
		u = u.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		u = u.SetLastName(*req.LastName)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

// Delete removes the patient together with all of its medical records.
// Records must not outlive their patient, so the two deletes share one
// transaction, and the patient's cached records list is dropped.
func (s *patientService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.MedicalRecord.Delete().
		Where(entrecord.PatientID(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete patient records: %w", err)
	}

	if err = tx.Patient.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	record.InvalidateCache(ctx, s.rdb, id)
	return nil
}
