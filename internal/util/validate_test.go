package util

import (
	"errors"
	"testing"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=veteran employer"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(signupForm{Email: "nope", Password: "short", Role: "admin"})

	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got %v", err)
	}

	want := map[string]string{
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters",
		"role":     "must be one of: veteran employer",
	}
	for field, msg := range want {
		if got := formErr.Errors[field]; got != msg {
			t.Errorf("Errors[%q] = %q, want %q", field, got, msg)
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(signupForm{Email: "a@b.co", Password: "longenough", Role: "veteran"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
