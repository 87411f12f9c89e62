package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"PORT":             "9090",
		"CORS_ORIGINS":     "https://a.example, https://b.example,",
		"GENERATOR_CONFIG": "/etc/passforge.toml",
		"SENTRY_DSN":       "https://key@sentry.example/1",
	}))

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
	if cfg.GeneratorConfig != "/etc/passforge.toml" {
		t.Errorf("GeneratorConfig = %q", cfg.GeneratorConfig)
	}
	if cfg.SentryDSN == "" {
		t.Error("SentryDSN should be set")
	}
}

func TestValidateProductionSecret(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{"ENV": "production"}))
	if err := cfg.Validate(); err != ErrProductionSecret {
		t.Errorf("Validate() error = %v, want %v", err, ErrProductionSecret)
	}

	cfg = FromEnv(envMap(map[string]string{"ENV": "production", "JWT_SECRET": "s3cr3t"}))
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generator.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	return path
}

func TestLoadGeneratorDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    GeneratorDefaults
		wantErr string
	}{
		{
			name:    "partial override",
			content: "length = 24\nsymbols = false\nexclude_ambiguous = true\n",
			want: GeneratorDefaults{
				Length: 24, Lowercase: true, Uppercase: true, Digits: true, ExcludeAmbiguous: true,
			},
		},
		{
			name:    "empty file",
			content: "",
			want:    DefaultGeneratorDefaults(),
		},
		{
			name:    "unknown key",
			content: "lenght = 24\n",
			wantErr: "unknown key",
		},
		{
			name:    "invalid toml",
			content: "length = = 3\n",
			wantErr: "cannot decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadGeneratorDefaults(writeFile(t, tt.content))

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadGeneratorDefaults() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadGeneratorDefaults() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadGeneratorDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadGeneratorDefaultsNoPath(t *testing.T) {
	got, err := LoadGeneratorDefaults("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultGeneratorDefaults() {
		t.Errorf("LoadGeneratorDefaults(\"\") = %+v", got)
	}
}

func TestLoadGeneratorDefaultsMissingFile(t *testing.T) {
	_, err := LoadGeneratorDefaults(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
