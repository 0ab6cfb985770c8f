// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caretab/clinic_backend/internal/repo/medicalrecord"
	"github.com/caretab/clinic_backend/internal/repo/patient"
)

// MedicalRecordCreate is the builder for creating a MedicalRecord entity.
type MedicalRecordCreate struct {
	config
	mutation *MedicalRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalRecordCreate) SetCreatedAt(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableCreatedAt(v *time.Time) *MedicalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalRecordCreate) SetUpdatedAt(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableUpdatedAt(v *time.Time) *MedicalRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalRecordCreate) SetPatientID(v int) *MedicalRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetVisitDate sets the "visit_date" field.
func (_c *MedicalRecordCreate) SetVisitDate(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetVisitDate(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *MedicalRecordCreate) SetDiagnosis(v string) *MedicalRecordCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetPrescription sets the "prescription" field.
func (_c *MedicalRecordCreate) SetPrescription(v string) *MedicalRecordCreate {
	_c.mutation.SetPrescription(v)
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *MedicalRecordCreate) SetPatient(v *Patient) *MedicalRecordCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_c *MedicalRecordCreate) Mutation() *MedicalRecordMutation {
	return _c.mutation
}

// Save creates the MedicalRecord in the database.
func (_c *MedicalRecordCreate) Save(ctx context.Context) (*MedicalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalRecordCreate) SaveX(ctx context.Context) *MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.VisitDate(); !ok {
		return &ValidationError{Name: "visit_date", err: errors.New(`repo: missing required field "MedicalRecord.visit_date"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`repo: missing required field "MedicalRecord.diagnosis"`)}
	}
	if v, ok := _c.mutation.Diagnosis(); ok {
		if err := medicalrecord.DiagnosisValidator(v); err != nil {
			return &ValidationError{Name: "diagnosis", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.diagnosis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prescription(); !ok {
		return &ValidationError{Name: "prescription", err: errors.New(`repo: missing required field "MedicalRecord.prescription"`)}
	}
	if v, ok := _c.mutation.Prescription(); ok {
		if err := medicalrecord.PrescriptionValidator(v); err != nil {
			return &ValidationError{Name: "prescription", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.prescription": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "MedicalRecord.patient"`)}
	}
	return nil
}

func (_c *MedicalRecordCreate) sqlSave(ctx context.Context) (*MedicalRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MedicalRecordCreate) createSpec() (*MedicalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalrecord.Table, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.VisitDate(); ok {
		_spec.SetField(medicalrecord.FieldVisitDate, field.TypeTime, value)
		_node.VisitDate = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(medicalrecord.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Prescription(); ok {
		_spec.SetField(medicalrecord.FieldPrescription, field.TypeString, value)
		_node.Prescription = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalrecord.PatientTable,
			Columns: []string{medicalrecord.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MedicalRecordCreateBulk is the builder for creating many MedicalRecord entities in bulk.
type MedicalRecordCreateBulk struct {
	config
	err      error
	builders []*MedicalRecordCreate
}

// Save creates the MedicalRecord entities in the database.
func (_c *MedicalRecordCreateBulk) Save(ctx context.Context) ([]*MedicalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MedicalRecordCreateBulk) SaveX(ctx context.Context) []*MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
