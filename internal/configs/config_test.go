package configs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var configKeys = []string{
	"APP_NAME", "PORT", "CORS_ALLOWED_ORIGINS", "STORE_DRIVER", "DATABASE_URL", "MONGO_URI",
	"MONGO_DATABASE", "MONGO_COLLECTION", "MONGO_BOOKINGS_COLLECTION", "RABBITMQ_ENABLED", "RABBITMQ_URL", "RABBITMQ_EXCHANGE",
	"JWT_SECRET", "STDOUT_LOG_LEVEL", "STDOUT_LOG_JSON", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST",
	"FLUENTBIT_PORT", "FLUENTBIT_LOG_LEVEL",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
	t.Cleanup(func() {
		for _, key := range configKeys {
			os.Unsetenv(key)
		}
	})
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfigDefaultsWithMemoryStore(t *testing.T) {
	clearEnv(t)
	os.Setenv("STORE_DRIVER", "memory")
	os.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != "estify" || cfg.Rest.Port != "8080" || cfg.Store.Driver != StoreDriverMemory {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RabbitMQ.Enabled || cfg.FluentBit.Enabled {
		t.Fatalf("optional integrations must be off by default")
	}
	if !reflect.DeepEqual(cfg.Rest.CORSAllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected CORS origins: %v", cfg.Rest.CORSAllowedOrigins)
	}
}

func TestLoadConfigRequiresDriverSettings(t *testing.T) {
	clearEnv(t)
	os.Setenv("JWT_SECRET", "secret")

	if _, err := LoadConfig(missingEnvFile(t)); err == nil {
		t.Fatalf("postgres driver without DATABASE_URL must fail")
	}

	os.Setenv("STORE_DRIVER", "mongo")
	if _, err := LoadConfig(missingEnvFile(t)); err == nil {
		t.Fatalf("mongo driver without MONGO_URI must fail")
	}

	os.Setenv("STORE_DRIVER", "sqlite")
	if _, err := LoadConfig(missingEnvFile(t)); err == nil {
		t.Fatalf("unknown driver must fail")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	clearEnv(t)
	os.Setenv("STORE_DRIVER", "memory")

	if _, err := LoadConfig(missingEnvFile(t)); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "STORE_DRIVER=mongo\nMONGO_URI=mongodb://localhost:27017\nJWT_SECRET=s\nRABBITMQ_ENABLED=true\nRABBITMQ_URL=amqp://localhost\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example ,\nFLUENTBIT_ENABLED=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.MongoDatabase != "estify" || cfg.Store.MongoCollection != "properties" || cfg.Store.MongoBookingsCollection != "bookings" {
		t.Fatalf("unexpected mongo defaults: %+v", cfg.Store)
	}
	if !cfg.RabbitMQ.Enabled || cfg.RabbitMQ.Exchange != "estify_property_events" {
		t.Fatalf("unexpected rabbitmq config: %+v", cfg.RabbitMQ)
	}
	if !reflect.DeepEqual(cfg.Rest.CORSAllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected CORS origins: %v", cfg.Rest.CORSAllowedOrigins)
	}
	if cfg.FluentBit.Enabled {
		t.Fatalf("fluent bit without host must be disabled")
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("ESTIFY_TEST_INT", "abc")
	if got := getEnvAsInt("ESTIFY_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	t.Setenv("ESTIFY_TEST_INT", "42")
	if got := getEnvAsInt("ESTIFY_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}
