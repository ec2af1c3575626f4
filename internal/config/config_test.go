package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", cfg.Upstream.Timeout)
	}
	if cfg.Batch.ChunkSize != 5 {
		t.Errorf("expected default chunk size 5, got %d", cfg.Batch.ChunkSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MEMBER_BASE_URL", "http://upstream.test")
	t.Setenv("BATCH_CHUNK_DELAY_MS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://upstream.test" {
		t.Errorf("unexpected base url %q", cfg.Upstream.BaseURL)
	}
	if cfg.Batch.InterChunkDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms delay, got %v", cfg.Batch.InterChunkDelay)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative port")
	}
}
