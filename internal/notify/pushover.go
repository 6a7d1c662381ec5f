package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradewatch/biasalert/internal/domain"
	"github.com/tradewatch/biasalert/internal/repo"
)

const (
	// MessageEndpoint is the Pushover message API.
	MessageEndpoint = "https://api.pushover.net/1/messages.json"

	// DefaultDedupWindow suppresses repeat alerts for the same symbol+bias
	// pair.
	DefaultDedupWindow = 120 * time.Second

	defaultTimeout = 10 * time.Second

	maxBodyLog = 4 << 10
)

// Config tunes a Pushover client. The zero value gives the stock behavior:
// 120s dedup window, 10s request timeout, dedup timestamp recorded before
// the send is attempted.
type Config struct {
	// Window overrides DefaultDedupWindow when > 0.
	Window time.Duration
	// RecordAfterSend records the dedup timestamp only after a successful
	// delivery, so a failed send does not consume the window. Off by
	// default: historically a failed send still blocked re-alerting.
	RecordAfterSend bool
	// Timeout overrides the 10s HTTP timeout when > 0.
	Timeout time.Duration
	// History, when set, receives a record of every attempt.
	History repo.AttemptStore
	// Clock substitutes the time source (tests).
	Clock Clock
}

// Pushover delivers trading alerts through the Pushover message API.
type Pushover struct {
	userKey  string
	apiToken string
	endpoint string

	client  *http.Client
	log     *zap.Logger
	clock   Clock
	history repo.AttemptStore

	window          time.Duration
	recordAfterSend bool

	mu           sync.Mutex
	recentAlerts map[string]time.Time
}

var _ Notifier = (*Pushover)(nil)

func NewPushover(userKey, apiToken string, log *zap.Logger, cfg Config) *Pushover {
	if userKey == "" || apiToken == "" {
		return nil
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultDedupWindow
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pushover{
		userKey:         userKey,
		apiToken:        apiToken,
		endpoint:        MessageEndpoint,
		client:          &http.Client{Timeout: cfg.Timeout},
		log:             log,
		clock:           cfg.Clock,
		history:         cfg.History,
		window:          cfg.Window,
		recordAfterSend: cfg.RecordAfterSend,
		recentAlerts:    make(map[string]time.Time),
	}
}

// result is the internal view of one delivery attempt. Public operations
// collapse it to a bool.
type result struct {
	outcome    domain.Outcome
	statusCode int
	detail     string // response body or transport error text
}

func (r result) ok() bool { return r.outcome == domain.OutcomeSent }

// Send posts one message. True only for an HTTP 200 from the API; any other
// status or transport failure comes back as false, never as a panic or error.
func (p *Pushover) Send(ctx context.Context, message, title string, priority int, opts *SendOptions) bool {
	res := p.deliver(ctx, message, title, priority, opts)

	switch res.outcome {
	case domain.OutcomeSent:
		p.log.Info("pushover_sent",
			zap.String("title", title),
			zap.String("message", message),
		)
	case domain.OutcomeRejected:
		p.log.Warn("pushover_rejected",
			zap.String("title", title),
			zap.Int("status", res.statusCode),
			zap.String("body", res.detail),
		)
	default:
		p.log.Warn("pushover_transport_error",
			zap.String("title", title),
			zap.String("error", res.detail),
		)
	}

	p.recordAttempt(ctx, message, title, priority, opts, res)
	return res.ok()
}

// SendBiasAlert classifies a bias change into a priority/sound profile,
// suppresses repeats for the same symbol+bias inside the dedup window, and
// delivers the alert.
func (p *Pushover) SendBiasAlert(ctx context.Context, symbol, bias string, score int, details string) bool {
	class := classifyBias(symbol, bias)

	message := fmt.Sprintf("%s (Score: %d)", bias, score)
	if details != "" {
		message += "\n" + details
	}

	key := symbol + "_" + bias
	now := p.clock.Now()

	p.mu.Lock()
	if last, seen := p.recentAlerts[key]; seen && now.Sub(last) < p.window {
		p.mu.Unlock()
		p.log.Info("pushover_skip_duplicate",
			zap.String("key", key),
			zap.Duration("window", p.window),
		)
		p.recordAttempt(ctx, message, class.title, class.priority,
			&SendOptions{Sound: class.sound},
			result{outcome: domain.OutcomeSkipped, detail: "duplicate within window"})
		return false
	}
	if !p.recordAfterSend {
		// A failed send still consumes the window; see Config.RecordAfterSend.
		p.recentAlerts[key] = now
	}
	p.mu.Unlock()

	ok := p.Send(ctx, message, class.title, class.priority, &SendOptions{Sound: class.sound})
	if p.recordAfterSend && ok {
		p.mu.Lock()
		p.recentAlerts[key] = now
		p.mu.Unlock()
	}
	return ok
}

// SendTestNotification sends a fixed message to verify the setup end to end.
func (p *Pushover) SendTestNotification(ctx context.Context) bool {
	return p.Send(ctx, "Bias tracker is online and ready!", "Test Alert", 0, &SendOptions{Sound: "cosmic"})
}

func (p *Pushover) deliver(ctx context.Context, message, title string, priority int, opts *SendOptions) result {
	form := url.Values{}
	form.Set("token", p.apiToken)
	form.Set("user", p.userKey)
	form.Set("message", message)
	form.Set("title", title)
	form.Set("priority", strconv.Itoa(priority))
	form.Set("timestamp", strconv.FormatInt(p.clock.Now().Unix(), 10))
	if opts != nil {
		if opts.Sound != "" {
			form.Set("sound", opts.Sound)
		}
		if opts.URL != "" {
			form.Set("url", opts.URL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return result{outcome: domain.OutcomeTransport, detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return result{outcome: domain.OutcomeTransport, detail: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyLog))
	if resp.StatusCode != http.StatusOK {
		return result{outcome: domain.OutcomeRejected, statusCode: resp.StatusCode, detail: string(body)}
	}
	return result{outcome: domain.OutcomeSent, statusCode: resp.StatusCode}
}

func (p *Pushover) recordAttempt(ctx context.Context, message, title string, priority int, opts *SendOptions, res result) {
	if p.history == nil {
		return
	}
	a := &domain.Attempt{
		Title:      title,
		Message:    message,
		Priority:   priority,
		Outcome:    res.outcome,
		HTTPStatus: res.statusCode,
		Detail:     res.detail,
		SentAt:     p.clock.Now().UTC(),
	}
	if opts != nil {
		a.Sound = opts.Sound
	}
	if err := p.history.Append(ctx, a); err != nil {
		p.log.Warn("attempt_history_append_failed", zap.Error(err))
	}
}

type biasClass struct {
	priority int
	sound    string
	title    string
}

// classifyBias maps a bias label to a priority/sound/title profile.
// FLIP outranks STRONG, so "STRONG FLIP" is treated as a flip.
func classifyBias(symbol, bias string) biasClass {
	upper := strings.ToUpper(bias)
	switch {
	case strings.Contains(upper, "FLIP"):
		return biasClass{priority: 2, sound: "siren", title: "🚨 " + symbol + " BIAS FLIP"}
	case strings.Contains(upper, "STRONG"):
		return biasClass{priority: 1, sound: "cashregister", title: "⚡ " + symbol + " STRONG BIAS"}
	case strings.Contains(upper, "WEAK"):
		return biasClass{priority: 0, sound: "cosmic", title: "📊 " + symbol + " Weak Bias"}
	default:
		return biasClass{priority: -1, sound: "none", title: "➖ " + symbol + " Neutral"}
	}
}
