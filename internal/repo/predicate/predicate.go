// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MedicalRecord is the predicate function for medicalrecord builders.
type MedicalRecord func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)
