package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runFailed(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	entries, err := c.outbox.FailedEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list failed changes: %w", err)
	}
	if len(entries) == 0 {
		c.io.Println("No permanently failed changes.")
		return nil
	}

	c.io.Printf("Found %d permanently failed change(s):\n", len(entries))
	for _, e := range entries {
		c.io.Printf("  %s  op=%s attempts=%d\n",
			e.Change.Key(), e.Change.Operation, e.AttemptCount)
		c.io.Printf("    last error: %s\n", e.LastError)
	}
	c.io.Println()
	c.io.Println("Re-queue with: kassasync retry <type> <id>")
	return nil
}

func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: kassasync retry <type> <id>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	rt := models.RecordType(args[0])
	if !rt.Valid() {
		return fmt.Errorf("unknown record type: %s", args[0])
	}
	key := models.RecordKey(rt, args[1])

	if err := c.outbox.RetryFailed(ctx, key); err != nil {
		return fmt.Errorf("failed to re-queue change: %w", err)
	}

	c.io.Printf("Change %s re-queued for delivery.\n", key)
	return nil
}
