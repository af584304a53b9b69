package utils

import "testing"

type registerPayload struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=30,alphanum"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		payload registerPayload
		valid   bool
		field   string
	}{
		{
			name:    "valid payload",
			payload: registerPayload{Email: "alice@example.com", Username: "alice", Password: "supersecret"},
			valid:   true,
		},
		{
			name:    "missing email",
			payload: registerPayload{Username: "alice", Password: "supersecret"},
			field:   "email",
		},
		{
			name:    "bad email",
			payload: registerPayload{Email: "not-an-email", Username: "alice", Password: "supersecret"},
			field:   "email",
		},
		{
			name:    "short username",
			payload: registerPayload{Email: "alice@example.com", Username: "al", Password: "supersecret"},
			field:   "username",
		},
		{
			name:    "short password",
			payload: registerPayload{Email: "alice@example.com", Username: "alice", Password: "short"},
			field:   "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.payload)
			if tt.valid {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			details := GetValidationErrors(err)
			if _, ok := details[tt.field]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.field, details)
			}
		})
	}
}
