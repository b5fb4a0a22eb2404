package config

import (
	"strings"
	"testing"
	"time"

	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
)

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_InvalidDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}

	expected := `database.driver must be "valkey", "redis" or "memory", got "postgres"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_Drivers(t *testing.T) {
	for _, driver := range []string{DriverValkey, DriverRedis, DriverMemory} {
		t.Run("driver="+driver, func(t *testing.T) {
			cfg := validConfig()
			cfg.Database.Driver = driver

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for driver %q: %v", driver, err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing valkey addrs")
	}

	cfg.Database.Driver = DriverMemory
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory driver needs no addrs: %v", err)
	}
}

func TestValidate_BadLocation(t *testing.T) {
	cfg := validConfig()
	cfg.Formats.Location = "Mars/Olympus_Mons"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown location")
	}
}

func TestValidate_PatternWithoutName(t *testing.T) {
	cfg := validConfig()
	cfg.Formats.Patterns = []PatternConfig{{Pattern: "yyyy"}}

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "formats.patterns[0]") {
		t.Fatalf("expected formats.patterns[0] error, got %v", err)
	}
}

func TestValidate_BadLocale(t *testing.T) {
	cfg := validConfig()
	cfg.Locales = []domlocale.Locale{{Name: "de"}}

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "locales[0]") {
		t.Fatalf("expected locales[0] error, got %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != DriverValkey {
		t.Errorf("expected Driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "dateformat:" {
		t.Errorf("expected KeyPrefix='dateformat:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Formats.DefaultLocale != "en" {
		t.Errorf("expected DefaultLocale='en', got %q", cfg.Formats.DefaultLocale)
	}
	if cfg.Formats.Location != "Local" {
		t.Errorf("expected Location='Local', got %q", cfg.Formats.Location)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{Driver: DriverRedis, ReadinessTimeout: 15},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
		Formats:  FormatsConfig{DefaultLocale: "fr", Location: "Europe/Paris"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != DriverRedis {
		t.Errorf("expected Driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Formats.DefaultLocale != "fr" {
		t.Errorf("expected DefaultLocale='fr', got %q", cfg.Formats.DefaultLocale)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := FormatsConfig{Location: "UTC"}.LoadLocation()
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected time.UTC, got %v", loc)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DATEFORMAT_TEST_SET", "valkey")

	got := string(expandEnvVars([]byte("a: ${DATEFORMAT_TEST_SET}\nb: ${DATEFORMAT_TEST_UNSET:-memory}\nc: ${DATEFORMAT_TEST_UNSET}")))
	want := "a: valkey\nb: memory\nc: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("DATEFORMAT_TEST_PORT", "9090")

	data := []byte(`
http:
  port: ${DATEFORMAT_TEST_PORT}
database:
  driver: memory
formats:
  utc: true
  location: UTC
  patterns:
    - name: day
      pattern: yyyy-MM-dd
locales:
  - name: it
    era: {abbr: [aC, dC], full: [avanti Cristo, dopo Cristo]}
    month:
      abbr: [gen, feb, mar, apr, mag, giu, lug, ago, set, ott, nov, dic]
      full: [gennaio, febbraio, marzo, aprile, maggio, giugno, luglio, agosto, settembre, ottobre, novembre, dicembre]
    day:
      abbr: [dom, lun, mar, mer, gio, ven, sab]
      full: [domenica, lunedì, martedì, mercoledì, giovedì, venerdì, sabato]
    am_pm: {abbr: [AM, PM], full: [AM, PM]}
`)

	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if !cfg.Formats.UTC || len(cfg.Formats.Patterns) != 1 {
		t.Errorf("formats not decoded: %+v", cfg.Formats)
	}
	if len(cfg.Locales) != 1 || cfg.Locales[0].Month.Full[7] != "agosto" {
		t.Errorf("locales not decoded: %+v", cfg.Locales)
	}
}

func TestLoad_Local(t *testing.T) {
	t.Setenv("DATEFORMAT_DB_DRIVER", "memory")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load(local): %v", err)
	}
	if cfg.Database.Driver != DriverMemory {
		t.Errorf("expected memory driver, got %q", cfg.Database.Driver)
	}
	if len(cfg.Locales) == 0 {
		t.Error("expected static locales in local config")
	}
}
