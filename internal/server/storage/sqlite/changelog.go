package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/vclock"
)

// AppendChanges атомарно добавляет пакет изменений в журнал.
// Возвращает присвоенные seq в порядке записей пакета.
func (s *Storage) AppendChanges(ctx context.Context, changes []*models.ChangeRecord) ([]int64, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op после Commit

	query := `
		INSERT INTO change_log (record_id, record_type, op, payload, vector, node_id, wall_ts, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck

	now := time.Now().UTC()
	seqs := make([]int64, 0, len(changes))

	for _, change := range changes {
		vectorJSON, err := json.Marshal(change.Vector)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vector for %s: %w", change.Key(), err)
		}

		result, err := stmt.ExecContext(ctx,
			change.RecordID,
			string(change.RecordType),
			string(change.Operation),
			[]byte(change.Payload),
			string(vectorJSON),
			change.NodeID,
			change.WallTime,
			now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert change %s: %w", change.Key(), err)
		}

		seq, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get assigned seq: %w", err)
		}
		seqs = append(seqs, seq)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit changes: %w", err)
	}

	return seqs, nil
}

// ChangesSince возвращает до limit записей с seq > since и признак
// наличия следующей страницы.
func (s *Storage) ChangesSince(ctx context.Context, since int64, limit int) ([]*models.ChangeRecord, bool, error) {
	if limit <= 0 {
		limit = 100
	}

	// Запрашиваем на одну запись больше, чтобы узнать про следующую страницу
	query := `
		SELECT seq, record_id, record_type, op, payload, vector, node_id, wall_ts
		FROM change_log
		WHERE seq > ?
		ORDER BY seq
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, since, limit+1)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query change log: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	changes := make([]*models.ChangeRecord, 0, limit)
	for rows.Next() {
		var (
			change     models.ChangeRecord
			recordType string
			op         string
			payload    []byte
			vectorJSON string
		)

		err := rows.Scan(
			&change.Seq,
			&change.RecordID,
			&recordType,
			&op,
			&payload,
			&vectorJSON,
			&change.NodeID,
			&change.WallTime,
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to scan change row: %w", err)
		}

		var vector vclock.Vector
		if err := json.Unmarshal([]byte(vectorJSON), &vector); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal vector for seq %d: %w", change.Seq, err)
		}

		change.RecordType = models.RecordType(recordType)
		change.Operation = models.Operation(op)
		change.Payload = payload
		change.Vector = vector

		changes = append(changes, &change)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate change rows: %w", err)
	}

	hasMore := len(changes) > limit
	if hasMore {
		changes = changes[:limit]
	}

	return changes, hasMore, nil
}

// MaxSeq возвращает наибольший присвоенный seq
func (s *Storage) MaxSeq(ctx context.Context) (int64, error) {
	var maxSeq int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM change_log`).Scan(&maxSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to get max seq: %w", err)
	}
	return maxSeq, nil
}

// ChangeCount возвращает размер журнала
func (s *Storage) ChangeCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM change_log`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count changes: %w", err)
	}
	return count, nil
}
