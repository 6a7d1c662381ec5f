package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr   string // API bind address, e.g., "127.0.0.1:8080" (local) or ":8080" (Docker)
	LogDir string // logs directory

	PushoverUserKey  string // Pushover user key
	PushoverAPIToken string // Pushover application token

	DedupWindow     time.Duration // suppression window for repeat symbol+bias alerts
	RecordAfterSend bool          // record dedup timestamp only after a successful send
	HTTPTimeout     time.Duration // outbound request timeout

	PublicAPIKeys []string // keys allowed to read history
	AdminAPIKeys  []string // keys allowed to trigger sends
	PublicRPM     int      // inbound rate limit, requests per minute
	PublicBurst   int
	HistoryLimit  int // attempts kept in memory
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// Dedup window (2 minutes unless overridden)
	window := 120 * time.Second
	if v := os.Getenv("DEDUP_WINDOW_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			window = time.Duration(ms) * time.Millisecond
		}
	}

	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	recordAfter := false
	if v := os.Getenv("DEDUP_RECORD_AFTER_SEND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			recordAfter = b
		}
	}

	publicRPM := 120
	if v := os.Getenv("PUBLIC_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			publicRPM = n
		}
	}

	publicBurst := 60
	if v := os.Getenv("PUBLIC_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			publicBurst = n
		}
	}

	historyLimit := 300
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			historyLimit = n
		}
	}

	return Config{
		Addr:             addr,
		LogDir:           logDir,
		PushoverUserKey:  os.Getenv("PUSHOVER_USER_KEY"),
		PushoverAPIToken: os.Getenv("PUSHOVER_API_TOKEN"),
		DedupWindow:      window,
		RecordAfterSend:  recordAfter,
		HTTPTimeout:      timeout,
		PublicAPIKeys:    splitKeys(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:     splitKeys(os.Getenv("ADMIN_API_KEYS")),
		PublicRPM:        publicRPM,
		PublicBurst:      publicBurst,
		HistoryLimit:     historyLimit,
	}
}

func splitKeys(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
