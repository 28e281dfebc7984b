package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleInput struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Amount int    `validate:"gt=0"`
	Kind   string `validate:"oneof=INCOME EXPENSE"`
}

func TestProcessValidationErrorsListsEveryField(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleInput{Amount: -5, Kind: "OTHER"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	result := ProcessValidationErrors(err)

	for _, field := range []string{"Name", "Email", "Amount", "Kind"} {
		if _, ok := result[field]; !ok {
			t.Errorf("missing field %q in %v", field, result)
		}
	}
	if len(result) != 4 {
		t.Errorf("got %d entries, want 4: %v", len(result), result)
	}
}

func TestProcessValidationErrorsMessages(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleInput{Name: "x", Email: "not-an-email", Amount: 1, Kind: "INCOME"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	result := ProcessValidationErrors(err)
	if got := result["Email"]; got != "must be a valid email address" {
		t.Errorf("Email message = %q", got)
	}
}

func TestProcessValidationErrorsNonValidatorError(t *testing.T) {
	result := ProcessValidationErrors(errors.New("unexpected EOF"))
	if got := result["body"]; got != "unexpected EOF" {
		t.Errorf("body = %q", got)
	}
	if len(result) != 1 {
		t.Errorf("got %d entries, want 1", len(result))
	}
}
