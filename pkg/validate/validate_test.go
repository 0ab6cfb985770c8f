package validate

import (
	"strings"
	"testing"
)

type createBody struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

type patchBody struct {
	FirstName *string `json:"first_name" validate:"omitnil,min=1,max=255"`
	LastName  *string `json:"last_name" validate:"omitnil,min=1,max=255"`
}

type recordBody struct {
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	VisitDate string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	Diagnosis string `json:"diagnosis" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	if fe := Struct(createBody{FirstName: "Ada", LastName: "Lovelace"}); fe != nil {
		t.Errorf("expected no field errors, got %v", fe)
	}
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	fe := Struct(createBody{LastName: "Lovelace"})
	if fe == nil {
		t.Fatal("expected field errors")
	}
	if _, ok := fe["first_name"]; !ok {
		t.Errorf("expected error keyed by json name first_name, got %v", fe)
	}
	if _, ok := fe["FirstName"]; ok {
		t.Errorf("Go field name leaked into errors: %v", fe)
	}
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		field   string
		message string
	}{
		{
			name:    "required string",
			input:   createBody{FirstName: "Ada"},
			field:   "last_name",
			message: "is required",
		},
		{
			name:    "max length string",
			input:   createBody{FirstName: strings.Repeat("x", 256), LastName: "L"},
			field:   "first_name",
			message: "must be at most 255 characters",
		},
		{
			name:    "empty patch value",
			input:   patchBody{FirstName: strPtr("")},
			field:   "first_name",
			message: "must not be empty",
		},
		{
			name:    "bad date",
			input:   recordBody{PatientID: 1, VisitDate: "01/02/2024", Diagnosis: "flu"},
			field:   "visit_date",
			message: "must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "non-positive id",
			input:   recordBody{PatientID: -3, VisitDate: "2024-01-02", Diagnosis: "flu"},
			field:   "patient_id",
			message: "must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := Struct(tt.input)
			if fe == nil {
				t.Fatal("expected field errors")
			}
			msgs, ok := fe[tt.field]
			if !ok {
				t.Fatalf("expected errors for %q, got %v", tt.field, fe)
			}
			found := false
			for _, m := range msgs {
				if m == tt.message {
					found = true
				}
			}
			if !found {
				t.Errorf("expected message %q for %q, got %v", tt.message, tt.field, msgs)
			}
		})
	}
}

func TestStruct_NilOnPatchWithNoFields(t *testing.T) {
	if fe := Struct(patchBody{}); fe != nil {
		t.Errorf("all-nil patch should validate, got %v", fe)
	}
}

func TestFieldErrors_Add(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("name", "is required")
	fe.Add("name", "must not be empty")
	if len(fe["name"]) != 2 {
		t.Errorf("expected two messages, got %v", fe["name"])
	}
}

func strPtr(s string) *string { return &s }
