package netmon

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Prober проверяет доступность сервера. Реализуется health-запросом
// API клиента: любая ошибка означает недоступность.
type Prober interface {
	Health(ctx context.Context) error
}

// Transition переход состояния связности
type Transition struct {
	At        time.Time
	Reachable bool
}

// Monitor периодически опрашивает health endpoint сервера и отслеживает
// переходы доступности. Переход офлайн→онлайн публикуется в Events(),
// чтобы планировщик мог немедленно запустить цикл синхронизации.
type Monitor struct {
	prober       Prober
	logger       *slog.Logger
	interval     time.Duration
	probeTimeout time.Duration

	reachable atomic.Bool
	events    chan Transition

	startOnce sync.Once
}

// New создает монитор связности. До первой пробы сервер считается
// недоступным.
func New(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &Monitor{
		prober:       prober,
		logger:       logger,
		interval:     interval,
		probeTimeout: 5 * time.Second,
		// Буфер на один переход: планировщик может быть занят циклом
		events: make(chan Transition, 1),
	}
}

// Reachable возвращает результат последней пробы
func (m *Monitor) Reachable() bool {
	return m.reachable.Load()
}

// Events возвращает канал переходов связности. Если потребитель не
// успевает, промежуточные переходы заменяются последним.
func (m *Monitor) Events() <-chan Transition {
	return m.events
}

// Run выполняет первую пробу немедленно и далее опрашивает сервер с
// заданным интервалом до отмены контекста. Повторный запуск - no-op.
func (m *Monitor) Run(ctx context.Context) {
	m.startOnce.Do(func() {
		m.probe(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.probe(ctx)
			}
		}
	})
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	err := m.prober.Health(probeCtx)
	reachable := err == nil

	prev := m.reachable.Swap(reachable)
	if prev == reachable {
		return
	}

	if reachable {
		m.logger.Info("Server reachable")
	} else {
		m.logger.Warn("Server unreachable", "error", err)
	}

	t := Transition{Reachable: reachable, At: time.Now()}
	select {
	case m.events <- t:
	default:
		// Потребитель отстал: вытесняем непрочитанный переход
		select {
		case <-m.events:
		default:
		}
		select {
		case m.events <- t:
		default:
		}
	}
}
