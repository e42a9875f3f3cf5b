package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/kassasync/internal/terminal/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	auth, err := c.authService.Session(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to read session: %w", err)
	}

	c.io.Println("=== Session ===")
	if auth == nil {
		c.io.Println("Status: not authenticated")
	} else {
		c.io.Println("Status: authenticated")
		c.io.Printf("Login:  %s\n", auth.Login)
		expires := time.Unix(auth.ExpiresAt, 0)
		if time.Now().After(expires) {
			c.io.Printf("Token:  expired at %s (will refresh on next request)\n",
				expires.Format(time.RFC3339))
		} else {
			c.io.Printf("Token:  valid until %s\n", expires.Format(time.RFC3339))
		}
	}

	nodeID, err := c.metadata.EnsureNodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read node ID: %w", err)
	}
	cursor, err := c.metadata.GetSyncCursor(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync cursor: %w", err)
	}
	pending, err := c.outbox.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending changes: %w", err)
	}
	failed, err := c.outbox.FailedEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list failed changes: %w", err)
	}
	conflicts, err := c.conflictService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	c.io.Println()
	c.io.Println("=== Sync ===")
	c.io.Printf("Node ID:           %s\n", nodeID)
	c.io.Printf("Cursor:            %d\n", cursor)
	c.io.Printf("Pending changes:   %d\n", pending)
	c.io.Printf("Failed changes:    %d\n", len(failed))
	c.io.Printf("Pending conflicts: %d\n", len(conflicts))

	if len(conflicts) > 0 {
		c.io.Println()
		c.io.Println("Run 'kassasync conflicts' to review pending conflicts.")
	}
	if len(failed) > 0 {
		c.io.Println("Run 'kassasync failed' to review failed changes.")
	}
	return nil
}
