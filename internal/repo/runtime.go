// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/caretab/clinic_backend/internal/repo/medicalrecord"
	"github.com/caretab/clinic_backend/internal/repo/patient"
	"github.com/caretab/clinic_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	medicalrecordMixin := schema.MedicalRecord{}.Mixin()
	medicalrecordMixinFields0 := medicalrecordMixin[0].Fields()
	_ = medicalrecordMixinFields0
	medicalrecordFields := schema.MedicalRecord{}.Fields()
	_ = medicalrecordFields
	// medicalrecordDescCreatedAt is the schema descriptor for created_at field.
	medicalrecordDescCreatedAt := medicalrecordMixinFields0[0].Descriptor()
	// medicalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalrecord.DefaultCreatedAt = medicalrecordDescCreatedAt.Default.(func() time.Time)
	// medicalrecordDescUpdatedAt is the schema descriptor for updated_at field.
	medicalrecordDescUpdatedAt := medicalrecordMixinFields0[1].Descriptor()
	// medicalrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalrecord.DefaultUpdatedAt = medicalrecordDescUpdatedAt.Default.(func() time.Time)
	// medicalrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalrecord.UpdateDefaultUpdatedAt = medicalrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalrecordDescDiagnosis is the schema descriptor for diagnosis field.
	medicalrecordDescDiagnosis := medicalrecordFields[2].Descriptor()
	// medicalrecord.DiagnosisValidator is a validator for the "diagnosis" field. It is called by the builders before save.
	medicalrecord.DiagnosisValidator = medicalrecordDescDiagnosis.Validators[0].(func(string) error)
	// medicalrecordDescPrescription is the schema descriptor for prescription field.
	medicalrecordDescPrescription := medicalrecordFields[3].Descriptor()
	// medicalrecord.PrescriptionValidator is a validator for the "prescription" field. It is called by the builders before save.
	medicalrecord.PrescriptionValidator = medicalrecordDescPrescription.Validators[0].(func(string) error)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields0[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields0[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[0].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[1].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}
