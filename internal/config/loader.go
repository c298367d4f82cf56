package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Load reads configuration from environment variables, applies defaults and
// validates the result. Every unset required variable and every unparsable
// value is reported in one error.
func Load() (*Config, error) {
	cfg := &Config{}

	if problems := loadStruct(reflect.ValueOf(cfg).Elem()); len(problems) > 0 {
		return nil, fmt.Errorf("config load:\n  - %s", strings.Join(problems, "\n  - "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// envField is the parsed struct tags of one config field.
type envField struct {
	name     string // env
	alt      string // envAlt, read when name is unset
	fallback string // default
	required bool
}

func parseEnvField(tag reflect.StructTag) (envField, bool) {
	f := envField{
		name:     tag.Get("env"),
		alt:      tag.Get("envAlt"),
		fallback: tag.Get("default"),
		required: tag.Get("required") == "true",
	}
	return f, f.name != ""
}

// lookup returns the raw value for the field and whether one was found.
func (f envField) lookup() (string, bool) {
	if v := strings.TrimSpace(os.Getenv(f.name)); v != "" {
		return v, true
	}
	if f.alt != "" {
		if v := strings.TrimSpace(os.Getenv(f.alt)); v != "" {
			return v, true
		}
	}
	if f.fallback != "" {
		return f.fallback, true
	}
	return "", false
}

var durationType = reflect.TypeOf(time.Duration(0))

// loadStruct fills v from the environment, descending into nested config
// sections, and returns a description of every field it could not set.
func loadStruct(v reflect.Value) []string {
	var problems []string
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		if sf.Type.Kind() == reflect.Struct {
			problems = append(problems, loadStruct(fv)...)
			continue
		}

		f, ok := parseEnvField(sf.Tag)
		if !ok {
			continue
		}

		raw, found := f.lookup()
		if !found {
			if f.required {
				problems = append(problems, fmt.Sprintf("required environment variable %s is not set", f.name))
			}
			continue
		}

		if err := setField(fv, raw); err != nil {
			problems = append(problems, fmt.Sprintf("invalid value for %s=%q: %v", f.name, raw, err))
		}
	}

	return problems
}

var errUnsupportedType = errors.New("unsupported field type")

// setField parses raw into field according to the field's type.
// Slices of strings are read as comma-separated lists.
func setField(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w: []%s", errUnsupportedType, field.Type().Elem().Kind())
		}
		field.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("%w: %s", errUnsupportedType, field.Kind())
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MinSessionSecretLen is the shortest accepted SESSION_SECRET.
const MinSessionSecretLen = 32

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Database validation
	if c.Database.URL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, "DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "DB_MIN_CONNS must be non-negative")
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	// Form validation
	if c.Form.MaxBytes <= 0 {
		errs = append(errs, "FORM_MAX_BYTES must be positive")
	}
	if c.Form.MaxCatalogItems <= 0 {
		errs = append(errs, "FORM_MAX_CATALOG_ITEMS must be positive")
	}
	if c.Form.MaxConcurrentBatches <= 0 {
		errs = append(errs, "FORM_MAX_CONCURRENT_BATCHES must be positive")
	}
	if c.Form.BatchWait <= 0 {
		errs = append(errs, "FORM_BATCH_WAIT must be positive")
	}

	// Session validation
	if len(c.Session.Secret) < MinSessionSecretLen {
		errs = append(errs, fmt.Sprintf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLen))
	}
	if c.Session.MaxAge <= 0 {
		errs = append(errs, "SESSION_MAX_AGE must be positive")
	}

	// Rate limit validation
	if c.Rate.Enabled && c.Rate.RequestsPerMinute <= 0 {
		errs = append(errs, "RATE_LIMIT_REQUESTS_PER_MINUTE must be positive when rate limiting is enabled")
	}
	if c.Rate.Enabled && c.Rate.SubmitLimit <= 0 {
		errs = append(errs, "RATE_LIMIT_SUBMIT must be positive when rate limiting is enabled")
	}

	// Security validation
	if c.Security.RequireAPIKey && len(c.Security.APIKeys) == 0 {
		errs = append(errs, "REQUIRE_API_KEY is true but API_KEYS is empty; configure at least one API key or disable auth")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs and secrets are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port))
	b.WriteString(fmt.Sprintf("Database: {URL: [MASKED], MaxConns: %d, MinConns: %d, AutoMigrate: %v}, ",
		c.Database.MaxConns, c.Database.MinConns, c.Database.AutoMigrate))
	b.WriteString(fmt.Sprintf("Form: {MaxBytes: %d, MaxCatalogItems: %d, MaxConcurrentBatches: %d, BatchWait: %s}, ",
		c.Form.MaxBytes, c.Form.MaxCatalogItems, c.Form.MaxConcurrentBatches, c.Form.BatchWait))
	b.WriteString(fmt.Sprintf("Session: {Secret: [MASKED], Secure: %v, MaxAge: %s}, ",
		c.Session.SecureCookie, c.Session.MaxAge))
	b.WriteString(fmt.Sprintf("Rate: {Enabled: %v, RequestsPerMinute: %d, Submit: %d}, ",
		c.Rate.Enabled, c.Rate.RequestsPerMinute, c.Rate.SubmitLimit))
	b.WriteString(fmt.Sprintf("Security: {CSP: %v, RequireAPIKey: %v, APIKeys: %d}, ",
		c.Security.EnableCSP, c.Security.RequireAPIKey, len(c.Security.APIKeys)))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
