package netmon

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProber struct {
	err error
}

func (p *stubProber) Health(ctx context.Context) error {
	return p.err
}

func TestMonitor_InitiallyUnreachable(t *testing.T) {
	m := New(&stubProber{}, time.Minute, slog.Default())
	assert.False(t, m.Reachable())
}

func TestMonitor_TransitionsProduceEvents(t *testing.T) {
	prober := &stubProber{err: errors.New("connection refused")}
	m := New(prober, time.Minute, slog.Default())
	ctx := context.Background()

	// Неудачная проба из начального офлайна - перехода нет
	m.probe(ctx)
	assert.False(t, m.Reachable())
	assert.Empty(t, m.events)

	// Сервер поднялся
	prober.err = nil
	m.probe(ctx)
	assert.True(t, m.Reachable())

	select {
	case tr := <-m.Events():
		assert.True(t, tr.Reachable)
		assert.False(t, tr.At.IsZero())
	default:
		t.Fatal("expected a reachable transition")
	}

	// Повторная удачная проба перехода не дает
	m.probe(ctx)
	assert.Empty(t, m.events)

	// Сервер упал
	prober.err = errors.New("timeout")
	m.probe(ctx)
	assert.False(t, m.Reachable())

	select {
	case tr := <-m.Events():
		assert.False(t, tr.Reachable)
	default:
		t.Fatal("expected an unreachable transition")
	}
}

// TestMonitor_SlowConsumerGetsLatestTransition: если потребитель не читал
// канал, он видит последний переход, а не первый.
func TestMonitor_SlowConsumerGetsLatestTransition(t *testing.T) {
	prober := &stubProber{}
	m := New(prober, time.Minute, slog.Default())
	ctx := context.Background()

	m.probe(ctx) // офлайн → онлайн, переход в буфере

	prober.err = errors.New("gone")
	m.probe(ctx) // онлайн → офлайн, вытесняет непрочитанный

	require.Len(t, m.events, 1)
	tr := <-m.Events()
	assert.False(t, tr.Reachable)
}

func TestMonitor_RunHonorsCancel(t *testing.T) {
	m := New(&stubProber{}, 10*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	// Первая проба выполняется сразу
	select {
	case <-m.Events():
	case <-time.After(time.Second):
		t.Fatal("expected an immediate probe")
	}
	assert.True(t, m.Reachable())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on cancel")
	}
}
