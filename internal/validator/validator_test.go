package validator

import (
	"errors"
	"strings"
	"testing"
)

type ageQuery struct {
	Sexes  []string `query:"sex" validate:"dive,required,max=16"`
	AgeMin int      `query:"age_min" validate:"gte=0,lte=80"`
	AgeMax int      `query:"age_max" validate:"gte=0,lte=80,gtefield=AgeMin"`
	Label  string   `json:"label,omitempty" validate:"omitempty,oneof=a b"`
	Plain  int      `validate:"lte=3"`
}

func TestValidate_Valid(t *testing.T) {
	q := ageQuery{Sexes: []string{"female"}, AgeMin: 10, AgeMax: 10}
	if err := Validate(q); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		q         ageQuery
		wantField string
		wantMsg   string
	}{
		{
			name:      "min below zero",
			q:         ageQuery{AgeMin: -1, AgeMax: 10},
			wantField: "age_min",
			wantMsg:   "must be greater than or equal to 0",
		},
		{
			name:      "max above domain",
			q:         ageQuery{AgeMax: 81},
			wantField: "age_max",
			wantMsg:   "must be less than or equal to 80",
		},
		{
			name:      "inverted range",
			q:         ageQuery{AgeMin: 50, AgeMax: 20},
			wantField: "age_max",
			wantMsg:   "must be greater than or equal to age_min",
		},
		{
			name:      "empty sex",
			q:         ageQuery{Sexes: []string{""}, AgeMax: 80},
			wantField: "sex[0]",
			wantMsg:   "is required",
		},
		{
			name:      "json tag name",
			q:         ageQuery{AgeMax: 80, Label: "c"},
			wantField: "label",
			wantMsg:   "must be one of: a b",
		},
		{
			name:      "untagged field",
			q:         ageQuery{AgeMax: 80, Plain: 4},
			wantField: "plain",
			wantMsg:   "must be less than or equal to 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.q)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !IsValidationError(err) {
				t.Fatalf("Expected ValidationErrors, got %T", err)
			}
			var verrs ValidationErrors
			errors.As(err, &verrs)
			if len(verrs) != 1 {
				t.Fatalf("Expected one error, got %v", verrs)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verrs[0].Field, tt.wantField)
			}
			if verrs[0].Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", verrs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "age_min", Message: "bad"},
		{Field: "age_max", Message: "worse"},
	}
	if got := errs.Error(); got != "age_min: bad; age_max: worse" {
		t.Errorf("Unexpected message %q", got)
	}
	if !strings.Contains(errs.Error(), "age_max") {
		t.Error("Message should list every field")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"AgeMin": "age_min",
		"Plain":  "plain",
		"":       "",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
