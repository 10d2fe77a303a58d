package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateEnv clears every GEMREVIEW_ variable Load reads and points the
// config file lookup at an empty directory so tests don't inherit host state.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{
		"GEMREVIEW_MODEL",
		"GEMREVIEW_TEMPERATURE",
		"GEMREVIEW_TOP_K",
		"GEMREVIEW_TOP_P",
		"GEMREVIEW_MAX_OUTPUT_TOKENS",
		"GEMREVIEW_EXCLUDE",
		"GEMREVIEW_MAX_PATCH_CHARS",
		"GEMREVIEW_FORMAT",
		"GEMREVIEW_REDACT_SECRETS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.7 || cfg.TopK != 40 || cfg.TopP != 0.95 {
		t.Errorf("sampling params = %v/%v/%v", cfg.Temperature, cfg.TopK, cfg.TopP)
	}
	if cfg.MaxOutputTokens != 8192 {
		t.Errorf("MaxOutputTokens = %d", cfg.MaxOutputTokens)
	}
	if cfg.MaxPatchChars != 50000 {
		t.Errorf("MaxPatchChars = %d", cfg.MaxPatchChars)
	}
	if cfg.Exclude != nil {
		t.Errorf("Exclude = %v, want nil (built-in patterns)", cfg.Exclude)
	}
	if !cfg.RedactSecrets {
		t.Error("RedactSecrets should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GEMREVIEW_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMREVIEW_MAX_PATCH_CHARS", "1000")
	t.Setenv("GEMREVIEW_EXCLUDE", "vendor/, .pb.go")
	t.Setenv("GEMREVIEW_REDACT_SECRETS", "false")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxPatchChars != 1000 {
		t.Errorf("MaxPatchChars = %d", cfg.MaxPatchChars)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "vendor/" || cfg.Exclude[1] != ".pb.go" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.RedactSecrets {
		t.Error("RedactSecrets should be false")
	}
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GEMREVIEW_MODEL", "env-model")

	cfg, err := Load(map[string]string{"model": "flag-model"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "flag-model" {
		t.Errorf("Model = %q, want flag-model", cfg.Model)
	}
}

func TestLoad_FileMerge(t *testing.T) {
	isolateEnv(t)

	saved := Default()
	saved.Model = "file-model"
	saved.MaxPatchChars = 2000
	if err := Save(saved); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "file-model" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxPatchChars != 2000 {
		t.Errorf("MaxPatchChars = %d", cfg.MaxPatchChars)
	}
	// Unset file fields keep defaults.
	if cfg.TopK != 40 {
		t.Errorf("TopK = %d", cfg.TopK)
	}
}

func TestLoad_FileZeroValues(t *testing.T) {
	isolateEnv(t)

	// Explicit zeros in the file must survive the merge: temperature 0 is
	// deterministic sampling, redactSecrets false turns scrubbing off.
	saved := Default()
	if err := SetField(&saved, "temperature", "0"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if err := SetField(&saved, "redactSecrets", "false"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if err := Save(saved); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", cfg.Temperature)
	}
	if cfg.RedactSecrets {
		t.Error("RedactSecrets should be false")
	}
	if cfg.TopK != 40 {
		t.Errorf("TopK = %d", cfg.TopK)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	isolateEnv(t)

	// A hand-written file that sets only some keys leaves the rest at
	// their defaults.
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"temperature": 0}`), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", cfg.Temperature)
	}
	if cfg.TopK != 40 || cfg.Model != "gemini-2.0-flash" || !cfg.RedactSecrets {
		t.Errorf("unset fields lost defaults: %+v", cfg)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "temperature", "0.2"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}

	if err := SetField(&cfg, "topK", "not-a-number"); err == nil {
		t.Error("Expected error for non-integer topK")
	}
	if err := SetField(&cfg, "bogus", "x"); err == nil {
		t.Error("Expected error for unknown key")
	}
}
