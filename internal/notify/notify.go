package notify

import "context"

// Notifier is anything that can deliver trading alerts. Every operation
// returns true only when the alert actually reached the remote service;
// failures and dedup skips both surface as false (logs keep the distinction).
type Notifier interface {
	Send(ctx context.Context, message, title string, priority int, opts *SendOptions) bool
	SendBiasAlert(ctx context.Context, symbol, bias string, score int, details string) bool
	SendTestNotification(ctx context.Context) bool
}

// SendOptions carries the optional message fields. Empty values are left out
// of the outbound payload entirely.
type SendOptions struct {
	Sound string
	URL   string
}

// Multi fans an alert out to several notifiers. True only if every
// underlying notifier delivered.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, message, title string, priority int, opts *SendOptions) bool {
	ok := true
	for _, n := range m {
		if n == nil {
			continue
		}
		if !n.Send(ctx, message, title, priority, opts) {
			ok = false
		}
	}
	return ok
}

func (m Multi) SendBiasAlert(ctx context.Context, symbol, bias string, score int, details string) bool {
	ok := true
	for _, n := range m {
		if n == nil {
			continue
		}
		if !n.SendBiasAlert(ctx, symbol, bias, score, details) {
			ok = false
		}
	}
	return ok
}

func (m Multi) SendTestNotification(ctx context.Context) bool {
	ok := true
	for _, n := range m {
		if n == nil {
			continue
		}
		if !n.SendTestNotification(ctx) {
			ok = false
		}
	}
	return ok
}
