// cmd/preflight/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tradewatch/biasalert/internal/config"
	"github.com/tradewatch/biasalert/internal/notify"
	"github.com/tradewatch/biasalert/internal/probe"
)

func main() {
	sendTest := flag.Bool("send-test", false, "also send a live test notification")
	flag.Parse()

	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	cfg := config.Load()

	if cfg.PushoverUserKey == "" {
		fail("PUSHOVER_USER_KEY is empty (nothing can be delivered).")
	}
	if cfg.PushoverAPIToken == "" {
		fail("PUSHOVER_API_TOKEN is empty (nothing can be delivered).")
	}
	ok("Pushover credentials present")

	if len(cfg.AdminAPIKeys) == 0 {
		warn("ADMIN_API_KEYS is empty — send routes will be open in dev mode.")
	}
	for name, v := range map[string]string{
		"PUBLIC_API_KEYS": os.Getenv("PUBLIC_API_KEYS"),
		"ADMIN_API_KEYS":  os.Getenv("ADMIN_API_KEYS"),
	} {
		if strings.Contains(strings.TrimSpace(v), " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}
	if os.Getenv("ADDR") == "" {
		warn("ADDR is empty; the API will bind its default address.")
	} else {
		ok("ADDR=" + cfg.Addr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	checks := probe.NewMultiChecker(
		probe.NewDNSChecker("api.pushover.net"),
		probe.NewCredentialChecker(cfg.PushoverUserKey, cfg.PushoverAPIToken),
	)
	failed := false
	for _, res := range checks.Run(ctx) {
		if res.Success {
			ok(res.Name + ": " + res.Message)
		} else {
			failed = true
			fmt.Fprintln(os.Stderr, "✖", res.Name+": "+res.Message)
		}
	}
	if failed {
		os.Exit(1)
	}

	if *sendTest {
		client := notify.NewPushover(cfg.PushoverUserKey, cfg.PushoverAPIToken, zap.NewNop(), notify.Config{
			Timeout: cfg.HTTPTimeout,
		})
		if client == nil || !client.SendTestNotification(ctx) {
			fail("test notification did not deliver")
		}
		ok("test notification delivered")
	}

	ok("preflight passed")
}
