package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the gemreview configuration.
type Config struct {
	Model           string   `json:"model"`
	Temperature     float64  `json:"temperature"`
	TopK            int      `json:"topK"`
	TopP            float64  `json:"topP"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Exclude         []string `json:"exclude,omitempty"`
	MaxPatchChars   int      `json:"maxPatchChars"`
	Format          string   `json:"format"`
	RedactSecrets   bool     `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied. A nil Exclude list
// means the filter package's built-in patterns apply.
func Default() Config {
	return Config{
		Model:           "gemini-2.0-flash",
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
		MaxPatchChars:   50000,
		Format:          "text",
		RedactSecrets:   true,
	}
}

// ConfigDir returns the platform-appropriate config directory for gemreview.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gemreview"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gemreview"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gemreview"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gemreview"), nil
	default:
		return filepath.Join(home, ".config", "gemreview"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// fileConfig mirrors Config with pointer fields so that an explicit zero in
// the config file (temperature 0, redactSecrets false) is distinguishable
// from an absent key during the merge.
type fileConfig struct {
	Model           *string  `json:"model"`
	Temperature     *float64 `json:"temperature"`
	TopK            *int     `json:"topK"`
	TopP            *float64 `json:"topP"`
	MaxOutputTokens *int     `json:"maxOutputTokens"`
	Exclude         []string `json:"exclude"`
	MaxPatchChars   *int     `json:"maxPatchChars"`
	Format          *string  `json:"format"`
	RedactSecrets   *bool    `json:"redactSecrets"`
}

func loadFileConfig() (fileConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return fileConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return fc, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := loadFileConfig()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Model != nil && *src.Model != "" {
		dst.Model = *src.Model
	}
	if src.Temperature != nil {
		dst.Temperature = *src.Temperature
	}
	if src.TopK != nil {
		dst.TopK = *src.TopK
	}
	if src.TopP != nil {
		dst.TopP = *src.TopP
	}
	if src.MaxOutputTokens != nil {
		dst.MaxOutputTokens = *src.MaxOutputTokens
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.MaxPatchChars != nil {
		dst.MaxPatchChars = *src.MaxPatchChars
	}
	if src.Format != nil && *src.Format != "" {
		dst.Format = *src.Format
	}
	if src.RedactSecrets != nil {
		dst.RedactSecrets = *src.RedactSecrets
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GEMREVIEW_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GEMREVIEW_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("GEMREVIEW_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopK = n
		}
	}
	if v := os.Getenv("GEMREVIEW_TOP_P"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.TopP = f
		}
	}
	if v := os.Getenv("GEMREVIEW_MAX_OUTPUT_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxOutputTokens = n
		}
	}
	if v := os.Getenv("GEMREVIEW_EXCLUDE"); v != "" {
		cfg.Exclude = splitList(v)
	}
	if v := os.Getenv("GEMREVIEW_MAX_PATCH_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxPatchChars = n
		}
	}
	if v := os.Getenv("GEMREVIEW_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("GEMREVIEW_REDACT_SECRETS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RedactSecrets = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	for key, v := range overrides {
		if v == "" {
			continue
		}
		// Flag values share the SetField key space.
		_ = SetField(cfg, key, v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "model":
		cfg.Model = value
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "topK":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("topK must be an integer: %w", err)
		}
		cfg.TopK = n
	case "topP":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("topP must be a number: %w", err)
		}
		cfg.TopP = f
	case "maxOutputTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxOutputTokens must be an integer: %w", err)
		}
		cfg.MaxOutputTokens = n
	case "exclude":
		cfg.Exclude = splitList(value)
	case "maxPatchChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxPatchChars must be an integer: %w", err)
		}
		cfg.MaxPatchChars = n
	case "format":
		cfg.Format = value
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
