package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/castingdesk/casting-api/internal/core/ports"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []ports.MailMessage
	failures int
}

func (m *recordingMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) delivered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestMailDispatcher_Delivers(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewMailDispatcher(mailer, 2, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.MailMessage{To: "alice@example.com", Subject: "hello"})
	d.Enqueue(ports.MailMessage{To: "bob@example.com", Subject: "hello"})

	waitFor(t, func() bool { return mailer.delivered() == 2 })
}

func TestMailDispatcher_RetriesFailedSends(t *testing.T) {
	mailer := &recordingMailer{failures: 2}
	d := NewMailDispatcher(mailer, 1, zerolog.Nop())
	d.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.MailMessage{To: "alice@example.com", Subject: "hello"})

	// Two transient failures still land inside the three-attempt budget.
	waitFor(t, func() bool { return mailer.delivered() == 1 })
}

func TestMailDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	mailer := &recordingMailer{failures: maxAttempts}
	d := NewMailDispatcher(mailer, 1, zerolog.Nop())
	d.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.MailMessage{To: "alice@example.com", Subject: "hello"})
	d.Enqueue(ports.MailMessage{To: "bob@example.com", Subject: "hello"})

	// The first message exhausts its retries; the second still goes out.
	waitFor(t, func() bool { return mailer.delivered() == 1 })
	mailer.mu.Lock()
	got := mailer.sent[0].To
	mailer.mu.Unlock()
	if got != "bob@example.com" {
		t.Fatalf("expected the abandoned message to be skipped, delivered to %q", got)
	}
}

func TestMailDispatcher_StopsOnCancel(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewMailDispatcher(mailer, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop after cancellation")
	}
}

func TestMailDispatcher_EnqueueNeverBlocks(t *testing.T) {
	// No workers started: the buffered queue fills and overflow is dropped.
	d := NewMailDispatcher(&recordingMailer{}, 1, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(ports.MailMessage{To: "alice@example.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}
