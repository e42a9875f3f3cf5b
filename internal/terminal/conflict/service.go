package conflict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс разрешения конфликтов оператором.
type Service interface {
	// List возвращает неразрешенные конфликты
	List(ctx context.Context) ([]*models.PendingConflict, error)

	// Get возвращает конфликт конкретной записи
	Get(ctx context.Context, rt models.RecordType, id string) (*models.PendingConflict, error)

	// Resolve применяет решение оператора. Для ResolutionMerged вызывающий
	// передает объединенный payload, для остальных он игнорируется.
	// Разрешение создает новую локальную мутацию: ее метка доминирует над
	// обеими сторонами конфликта, поэтому результат реплицируется на
	// остальные терминалы обычным путем через outbox.
	Resolve(ctx context.Context, rt models.RecordType, id string,
		resolution models.Resolution, resolvedBy string, mergedPayload json.RawMessage) error
}

// service handles operator-driven conflict resolution
type service struct {
	conflicts storage.ConflictStorage
	metadata  storage.MetadataStorage
	logger    *slog.Logger
}

// NewService creates a new conflict resolution service
func NewService(conflicts storage.ConflictStorage, metadata storage.MetadataStorage, logger *slog.Logger) Service {
	return &service{
		conflicts: conflicts,
		metadata:  metadata,
		logger:    logger,
	}
}

// List возвращает неразрешенные конфликты
func (s *service) List(ctx context.Context) ([]*models.PendingConflict, error) {
	return s.conflicts.ListConflicts(ctx)
}

// Get возвращает конфликт конкретной записи
func (s *service) Get(ctx context.Context, rt models.RecordType, id string) (*models.PendingConflict, error) {
	return s.conflicts.GetConflict(ctx, rt, id)
}

// Resolve применяет решение оператора к конфликту
func (s *service) Resolve(ctx context.Context, rt models.RecordType, id string,
	resolution models.Resolution, resolvedBy string, mergedPayload json.RawMessage,
) error {
	if !resolution.Valid() {
		return fmt.Errorf("invalid resolution: %s", resolution)
	}

	conflict, err := s.conflicts.GetConflict(ctx, rt, id)
	if err != nil {
		return fmt.Errorf("failed to get conflict: %w", err)
	}
	if conflict.Resolution != models.ResolutionUnresolved {
		return fmt.Errorf("conflict %s already resolved as %s", conflict.Key(), conflict.Resolution)
	}

	var payload json.RawMessage
	var deleted bool
	switch resolution {
	case models.ResolutionLocalWins:
		payload = conflict.LocalPayload
		deleted = conflict.LocalDeleted
	case models.ResolutionRemoteWins:
		payload = conflict.RemotePayload
		deleted = conflict.RemoteDeleted
	case models.ResolutionMerged:
		if len(mergedPayload) == 0 {
			return fmt.Errorf("merged resolution requires a payload")
		}
		payload = mergedPayload
	}

	nodeID, err := s.metadata.EnsureNodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get node id: %w", err)
	}

	// Метка разрешения доминирует над обеими сторонами конфликта
	vec := conflict.LocalVector.Merge(conflict.RemoteVector).Increment(nodeID)
	now := time.Now()

	op := models.OperationUpdate
	if deleted {
		op = models.OperationDelete
	}

	resolved := *conflict
	resolved.Resolution = resolution
	resolved.ResolvedBy = resolvedBy
	resolved.ResolvedAt = now

	change := &models.ChangeRecord{
		RecordID:   id,
		RecordType: rt,
		Operation:  op,
		NodeID:     nodeID,
		Payload:    payload,
		Vector:     vec,
		WallTime:   now,
	}

	rec := &models.StoredRecord{
		RecordID:   id,
		RecordType: rt,
		Payload:    payload,
		Vector:     vec,
		Deleted:    deleted,
		Synced:     false,
		UpdatedAt:  now,
	}

	if err := s.conflicts.ApplyResolution(ctx, &resolved, rec, change); err != nil {
		return fmt.Errorf("failed to apply resolution: %w", err)
	}

	s.logger.Info("Conflict resolved",
		"record", conflict.Key(),
		"resolution", string(resolution),
		"resolved_by", resolvedBy)

	return nil
}
