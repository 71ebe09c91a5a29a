package internal

import (
	"strings"
	"testing"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestLedgerConfig_EmptyBackendDefaultsFile(t *testing.T) {
	cfg := LedgerConfig{Backend: "", Path: "./data/bookings.json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty backend should default to file: %v", err)
	}
	if cfg.Backend != LedgerBackendFile {
		t.Errorf("backend = %q, want %q", cfg.Backend, LedgerBackendFile)
	}
}

func TestLedgerConfig_SQLiteBackend(t *testing.T) {
	cfg := LedgerConfig{Backend: "sqlite", Path: "./data/gid.db"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite backend should pass: %v", err)
	}
}

func TestLedgerConfig_UnknownBackend(t *testing.T) {
	cfg := LedgerConfig{Backend: "postgres", Path: "./data"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown backend should fail validation")
	}
}

func TestLedgerConfig_MissingPath(t *testing.T) {
	cfg := LedgerConfig{Backend: "file"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty path should fail validation")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Ledger.Backend != LedgerBackendFile {
		t.Errorf("default ledger backend = %q", cfg.Ledger.Backend)
	}
	if !cfg.Catalog.Watch {
		t.Error("default config should watch a file-backed dataset")
	}
}
