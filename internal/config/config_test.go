package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Immich: ImmichConfig{Scheme: "http", Host: "127.0.0.1", Port: 2283},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingImmichHost(t *testing.T) {
	cfg := validConfig()
	cfg.Immich.Host = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing immich host")
	}
}

func TestValidate_MissingImmichPort(t *testing.T) {
	cfg := validConfig()
	cfg.Immich.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing immich port")
	}
}

func TestValidate_InvalidScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Immich.Scheme = "gopher"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid scheme")
	}
}

func TestValidate_UnknownRecognizerProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Recognizer.Provider = "spacy"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown recognizer provider")
	}
}

func TestValidate_OpenAIRequiresAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Recognizer.Provider = ProviderOpenAI

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing api key")
	}

	cfg.Recognizer.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with api key set: %v", err)
	}
}

func TestValidate_CacheRequiresAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache without addrs")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Recognizer.Provider != ProviderLexical {
		t.Errorf("default provider = %q, want %q", cfg.Recognizer.Provider, ProviderLexical)
	}
	if cfg.Immich.Scheme != "http" {
		t.Errorf("default scheme = %q, want http", cfg.Immich.Scheme)
	}
	if cfg.HTTP.ReadTimeoutSec <= 0 || cfg.HTTP.WriteTimeoutSec <= 0 {
		t.Error("expected timeout defaults to be applied")
	}
	if cfg.Cache.TTLHours <= 0 {
		t.Error("expected cache TTL default to be applied")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("IMMICH_TEST_HOST", "photos.example.com")
	os.Unsetenv("IMMICH_TEST_MISSING")

	in := []byte("host: ${IMMICH_TEST_HOST}\nport: ${IMMICH_TEST_MISSING:-2283}\n")
	got := string(expandEnvVars(in))
	want := "host: photos.example.com\nport: 2283\n"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
