package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

var dnsTimeout = 3 * time.Second

// DNSChecker classifies whether the notification API host resolves, so the
// preflight can tell "bad credentials" apart from "no connectivity".
type DNSChecker struct {
	Host string
}

func NewDNSChecker(host string) *DNSChecker {
	return &DNSChecker{Host: host}
}

func (d *DNSChecker) Check(ctx context.Context) CheckResult {
	class := classifyDNS(ctx, d.Host)
	return CheckResult{
		Name:    "dns",
		Success: class == "RESOLVES",
		Message: d.Host + ": " + class,
	}
}

// classifyDNS returns "RESOLVES" | "NXDOMAIN" | "SERVFAIL_or_TIMEOUT" | "INVALID_NAME".
func classifyDNS(ctx context.Context, host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return "INVALID_NAME"
	}

	ctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()
	r := &net.Resolver{} // OS resolver

	ips, err := r.LookupIP(ctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return "RESOLVES"
	}
	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsNotFound {
			return "NXDOMAIN"
		}
		if de.IsTemporary || de.Timeout() {
			return "SERVFAIL_or_TIMEOUT"
		}
	}
	return "SERVFAIL_or_TIMEOUT"
}
