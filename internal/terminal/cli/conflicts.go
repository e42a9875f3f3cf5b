package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/kassasync/internal/models"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	conflicts, err := c.conflictService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}
	if len(conflicts) == 0 {
		c.io.Println("No pending conflicts.")
		return nil
	}

	c.io.Printf("Found %d pending conflict(s):\n", len(conflicts))
	for _, pc := range conflicts {
		c.io.Printf("  %s/%s  detected %s  remote node %s\n",
			pc.RecordType, pc.RecordID,
			pc.DetectedAt.Format("2006-01-02 15:04:05"), pc.RemoteNodeID)
		c.io.Printf("    local:  %s\n", payloadSummary(pc.LocalPayload, pc.LocalDeleted))
		c.io.Printf("    remote: %s\n", payloadSummary(pc.RemotePayload, pc.RemoteDeleted))
	}
	c.io.Println()
	c.io.Println("Resolve with: kassasync resolve <type> <id> <local|remote|merged>")
	return nil
}

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: kassasync resolve <type> <id> <local|remote|merged>")
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	rt := models.RecordType(args[0])
	if !rt.Valid() {
		return fmt.Errorf("unknown record type: %s", args[0])
	}
	id := args[1]

	var resolution models.Resolution
	switch args[2] {
	case "local":
		resolution = models.ResolutionLocalWins
	case "remote":
		resolution = models.ResolutionRemoteWins
	case "merged":
		resolution = models.ResolutionMerged
	default:
		return fmt.Errorf("unknown resolution: %s (want local, remote or merged)", args[2])
	}

	// Слияние требует готового снимка: оператор вводит итоговый JSON.
	var mergedPayload json.RawMessage
	if resolution == models.ResolutionMerged {
		raw, err := c.io.ReadInput("Merged JSON payload: ")
		if err != nil {
			return fmt.Errorf("failed to read merged payload: %w", err)
		}
		if !json.Valid([]byte(raw)) {
			return fmt.Errorf("merged payload is not valid JSON")
		}
		mergedPayload = json.RawMessage(raw)
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	err = c.conflictService.Resolve(ctx, rt, id, resolution, session.Login, mergedPayload)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Printf("Conflict %s/%s resolved (%s).\n", rt, id, resolution)
	c.io.Println("The resolution is queued and will be pushed on the next sync.")
	return nil
}

func payloadSummary(payload json.RawMessage, deleted bool) string {
	if deleted {
		return "(deleted)"
	}
	if len(payload) == 0 {
		return "(missing)"
	}
	const maxLen = 120
	s := string(payload)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
