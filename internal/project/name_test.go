package project

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase", "myapp", false},
		{"mixed case", "MyApp", false},
		{"digits", "app2", false},
		{"hyphen", "my-app", false},
		{"underscore", "my_app", false},
		{"leading hyphen", "-app", false},
		{"only digits", "2024", false},
		{"empty", "", true},
		{"space", "my app", true},
		{"dot", "my.app", true},
		{"slash", "my/app", true},
		{"unicode letter", "café", true},
		{"quote", `my"app`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Value != tt.input {
				t.Errorf("Value = %q, want %q", ve.Value, tt.input)
			}
		})
	}
}

func TestValidateNameReportsOffendingCharacter(t *testing.T) {
	err := ValidateName("bad!name")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `'!'`) {
		t.Errorf("error should name the offending character, got: %v", err)
	}
}
