package validation

import (
	"strings"
	"testing"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := New()
	v.Required("name", "").
		MinLength("secret", "abc", 8).
		Range("port", 99999, 1, 65535)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(v.Errors()))
	}

	err := v.Err()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	for _, want := range []string{"name", "secret", "port"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %q", want, err.Error())
		}
	}
}

func TestValidatorPasses(t *testing.T) {
	v := New()
	v.Required("name", "svc").
		MinLength("secret", "long-enough-secret", 8).
		Range("port", 8000, 1, 65535).
		OneOf("env", "production", "development", "staging", "production")

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %v", v.Errors())
	}
	if v.Err() != nil {
		t.Fatalf("expected nil error, got %v", v.Err())
	}
}

func TestRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "c9a646f8-07c4-44f5-9de3-e3e804ae5720", false},
		{"empty", "", true},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", true},
		{"garbage", "nope", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.RequiredUUID("id", tc.value)
			if tc.wantErr != v.HasErrors() {
				t.Errorf("wantErr=%v, got errors %v", tc.wantErr, v.Errors())
			}
		})
	}
}

func TestStructValidation(t *testing.T) {
	type section struct {
		Algorithm string `mapstructure:"jwt_algorithm" validate:"omitempty,oneof=HS256 HS384 HS512"`
		Port      int    `mapstructure:"port" validate:"omitempty,gte=1,lte=65535"`
		URL       string `mapstructure:"url" validate:"omitempty,uri"`
	}

	t.Run("valid", func(t *testing.T) {
		err := Struct(section{Algorithm: "HS256", Port: 8000, URL: "http://localhost:8123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero values skipped via omitempty", func(t *testing.T) {
		if err := Struct(section{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid algorithm uses mapstructure name", func(t *testing.T) {
		err := Struct(section{Algorithm: "RS256"})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "jwt_algorithm") {
			t.Errorf("expected field name from mapstructure tag, got %q", err.Error())
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		if err := Struct(section{Port: 99999}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"JWTSecret", "j_w_t_secret"},
		{"Port", "port"},
		{"KeepAlive", "keep_alive"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
