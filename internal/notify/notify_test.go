package notify

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tradewatch/biasalert/internal/domain"
	"github.com/tradewatch/biasalert/internal/repo/memory"
)

type stubNotifier struct {
	ok    bool
	calls int
}

func (s *stubNotifier) Send(ctx context.Context, message, title string, priority int, opts *SendOptions) bool {
	s.calls++
	return s.ok
}

func (s *stubNotifier) SendBiasAlert(ctx context.Context, symbol, bias string, score int, details string) bool {
	s.calls++
	return s.ok
}

func (s *stubNotifier) SendTestNotification(ctx context.Context) bool {
	s.calls++
	return s.ok
}

func TestMulti_AllMustDeliver(t *testing.T) {
	good := &stubNotifier{ok: true}
	bad := &stubNotifier{ok: false}

	m := Multi{good, nil, bad}
	if m.SendBiasAlert(context.Background(), "BTC", "FLIP", 90, "") {
		t.Fatal("expected false when one notifier fails")
	}
	if good.calls != 1 || bad.calls != 1 {
		t.Fatalf("every non-nil notifier should be called: good=%d bad=%d", good.calls, bad.calls)
	}

	if ok := (Multi{good}).SendTestNotification(context.Background()); !ok {
		t.Fatal("expected true when all notifiers deliver")
	}
}

func TestPushover_RecordsAttemptHistory(t *testing.T) {
	cs := newCapturingServer(200)
	defer cs.ts.Close()

	store := memory.New(0)
	clock := newFakeClock()
	p := NewPushover("user-key", "api-token", zap.NewNop(), Config{History: store, Clock: clock})
	p.endpoint = cs.ts.URL
	ctx := context.Background()

	p.SendBiasAlert(ctx, "BTC", "STRONG BUY", 80, "") // delivered
	p.SendBiasAlert(ctx, "BTC", "STRONG BUY", 85, "") // skipped
	clock.advance(3 * time.Minute)
	cs.status = 503
	p.SendBiasAlert(ctx, "BTC", "STRONG BUY", 85, "") // rejected

	got, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 attempts recorded, got %d", len(got))
	}
	// newest first
	if got[0].Outcome != domain.OutcomeRejected || got[0].HTTPStatus != 503 {
		t.Fatalf("attempt 0: %+v", got[0])
	}
	if got[1].Outcome != domain.OutcomeSkipped {
		t.Fatalf("attempt 1: %+v", got[1])
	}
	if got[2].Outcome != domain.OutcomeSent || !got[2].Delivered() {
		t.Fatalf("attempt 2: %+v", got[2])
	}
}
