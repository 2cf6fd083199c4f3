package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"sos/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "sos"
	cfg.Notification = &config.NotificationConfig{
		Providers:      []string{"primary", "fallback"},
		InterSendDelay: 500 * time.Millisecond,
		SendTimeout:    time.Second,
		TimeZone:       "Asia/Kolkata",
		SenderName:     "SHEILD",
	}
	cfg.Dispatch = &config.DispatchConfig{Enabled: true}
	cfg.ApplyDefaults()

	return cfg
}

// fakeClock is a settable clock; sleeping through fakeSleeper advances it.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// fakeSleeper records every requested pause and advances the clock instead of blocking.
type fakeSleeper struct {
	mu    sync.Mutex
	clock *fakeClock
	calls []time.Duration
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.calls = append(s.calls, d)
	s.mu.Unlock()

	if s.clock != nil {
		s.clock.Advance(d)
	}

	return ctx.Err()
}

func (s *fakeSleeper) Calls() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.calls...)
}
