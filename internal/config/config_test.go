package config

import (
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("PUSHOVER_USER_KEY", "uk_test")
	t.Setenv("PUSHOVER_API_TOKEN", "tok_test")
	t.Setenv("DEDUP_WINDOW_MS", "60000")
	t.Setenv("DEDUP_RECORD_AFTER_SEND", "true")
	t.Setenv("HTTP_TIMEOUT_MS", "1234")
	t.Setenv("PUBLIC_API_KEYS", "pub_a, pub_b")
	t.Setenv("ADMIN_API_KEYS", "adm_x")
	t.Setenv("PUBLIC_RPM", "111")
	t.Setenv("PUBLIC_BURST", "22")
	t.Setenv("HISTORY_LIMIT", "50")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if cfg.PushoverUserKey != "uk_test" || cfg.PushoverAPIToken != "tok_test" {
		t.Fatalf("credentials wrong: %+v", cfg)
	}
	if cfg.DedupWindow != time.Minute {
		t.Fatalf("dedup window wrong: %v", cfg.DedupWindow)
	}
	if !cfg.RecordAfterSend {
		t.Fatalf("expected RecordAfterSend true")
	}
	if cfg.HTTPTimeout != 1234*time.Millisecond {
		t.Fatalf("timeout wrong: %v", cfg.HTTPTimeout)
	}
	if len(cfg.PublicAPIKeys) != 2 || cfg.PublicAPIKeys[1] != "pub_b" {
		t.Fatalf("public keys wrong: %+v", cfg.PublicAPIKeys)
	}
	if len(cfg.AdminAPIKeys) != 1 || cfg.AdminAPIKeys[0] != "adm_x" {
		t.Fatalf("admin keys wrong: %+v", cfg.AdminAPIKeys)
	}
	if cfg.PublicRPM != 111 || cfg.PublicBurst != 22 || cfg.HistoryLimit != 50 {
		t.Fatalf("limits wrong: %+v", cfg)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"ADDR", "LOG_DIR", "PUSHOVER_USER_KEY", "PUSHOVER_API_TOKEN",
		"DEDUP_WINDOW_MS", "DEDUP_RECORD_AFTER_SEND", "HTTP_TIMEOUT_MS",
		"PUBLIC_API_KEYS", "ADMIN_API_KEYS", "PUBLIC_RPM", "PUBLIC_BURST",
		"HISTORY_LIMIT",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	if cfg.Addr != "127.0.0.1:8080" || cfg.LogDir != "logs" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.DedupWindow != 120*time.Second {
		t.Fatalf("default window wrong: %v", cfg.DedupWindow)
	}
	if cfg.RecordAfterSend {
		t.Fatalf("RecordAfterSend should default to false")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("default timeout wrong: %v", cfg.HTTPTimeout)
	}
	if cfg.PublicAPIKeys != nil || cfg.AdminAPIKeys != nil {
		t.Fatalf("keys should default to nil: %+v", cfg)
	}
}
