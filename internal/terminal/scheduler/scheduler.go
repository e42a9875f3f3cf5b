package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/kassasync/internal/terminal/netmon"
	"github.com/iudanet/kassasync/internal/terminal/syncer"
)

// Runner запускает цикл синхронизации. Реализуется координатором.
type Runner interface {
	RunCycle(ctx context.Context) (*syncer.CycleResult, error)
}

// Connectivity отдает состояние связности и переходы. Реализуется
// монитором netmon.
type Connectivity interface {
	Reachable() bool
	Events() <-chan netmon.Transition
}

// Scheduler запускает циклы синхронизации: по таймеру, по переходу
// офлайн→онлайн и по ручному запросу через Kick. Все срабатывания
// сходятся в одной горутине, конкурирующие запуски подавляет сам
// координатор через ErrCycleInProgress.
type Scheduler struct {
	runner   Runner
	network  Connectivity
	logger   *slog.Logger
	interval time.Duration
	kick     chan struct{}
}

// New создает планировщик синхронизации
func New(runner Runner, network Connectivity, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Scheduler{
		runner:   runner,
		network:  network,
		logger:   logger,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}
}

// Kick запрашивает внеочередной цикл синхронизации. Если запрос уже
// ожидает обработки, повторный схлопывается с ним.
func (s *Scheduler) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Run крутит цикл планирования до отмены контекста.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return

		case <-ticker.C:
			s.runCycle(ctx, "interval")

		case t := <-s.network.Events():
			// Восстановление связи - немедленная синхронизация,
			// потеря связи сама по себе цикла не требует
			if t.Reachable {
				s.runCycle(ctx, "reconnect")
			}

		case <-s.kick:
			s.runCycle(ctx, "manual")
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, trigger string) {
	if !s.network.Reachable() {
		s.logger.Debug("Skipping sync cycle, server unreachable", "trigger", trigger)
		return
	}

	result, err := s.runner.RunCycle(ctx)
	if err != nil {
		if errors.Is(err, syncer.ErrCycleInProgress) {
			s.logger.Debug("Sync cycle already running", "trigger", trigger)
			return
		}
		s.logger.Error("Sync cycle failed", "trigger", trigger, "error", err)
		return
	}

	s.logger.Debug("Sync cycle completed",
		"trigger", trigger,
		"pushed", result.Pushed,
		"applied", result.Applied,
		"conflicts", result.Conflicts)
}
