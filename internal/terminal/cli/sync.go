package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/kassasync/internal/terminal/syncer"
)

func (c *Cli) runSync(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("Starting synchronization...")

	result, err := c.coordinator.RunCycle(ctx)
	if errors.Is(err, syncer.ErrCycleInProgress) {
		c.io.Println("Another sync cycle is already running.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println("Synchronization completed!")
	c.io.Printf("Pushed to server:    %d entries\n", result.Pushed)
	if result.PushFailed > 0 {
		c.io.Printf("Push failures:       %d entries\n", result.PushFailed)
	}
	c.io.Printf("Pulled from server:  %d changes\n", result.Pulled)
	c.io.Printf("Applied locally:     %d changes\n", result.Applied)
	c.io.Printf("Ignored (stale):     %d changes\n", result.Ignored)
	if result.Conflicts > 0 {
		c.io.Printf("New conflicts:       %d (run 'kassasync conflicts')\n", result.Conflicts)
	}
	c.io.Printf("Cursor:              %d -> %d\n", result.CursorBefore, result.CursorAfter)
	return nil
}

// runWatch запускает монитор связи и планировщик до отмены контекста
func (c *Cli) runWatch(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("Watching for changes. Press Ctrl+C to stop.")

	done := make(chan struct{})
	go func() {
		c.monitor.Run(ctx)
		done <- struct{}{}
	}()
	go func() {
		c.scheduler.Run(ctx)
		done <- struct{}{}
	}()

	<-ctx.Done()
	<-done
	<-done

	c.io.Println("Stopped.")
	return nil
}
