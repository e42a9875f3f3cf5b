package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/kassasync/internal/vclock"
)

// RecordType тип доменной сущности, к которой относится изменение
type RecordType string

const (
	RecordTypeProduct     RecordType = "product"
	RecordTypeInventory   RecordType = "inventory"
	RecordTypeCustomer    RecordType = "customer"
	RecordTypeTransaction RecordType = "transaction"
)

// Valid проверяет, что тип записи известен движку.
func (rt RecordType) Valid() bool {
	switch rt {
	case RecordTypeProduct, RecordTypeInventory, RecordTypeCustomer, RecordTypeTransaction:
		return true
	default:
		return false
	}
}

// Operation вид мутации доменной записи
type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Valid проверяет, что операция известна движку.
func (op Operation) Valid() bool {
	switch op {
	case OperationInsert, OperationUpdate, OperationDelete:
		return true
	default:
		return false
	}
}

// ChangeRecord представляет одно изменение одной доменной записи.
// Payload всегда содержит полный снимок сущности, а не дельту - получателю
// не нужно знать предыдущее состояние, чтобы восстановить новое.
//
// Seq присваивается только сервером при приеме изменения в журнал.
// На локально созданных записях Seq равен нулю.
type ChangeRecord struct {
	WallTime   time.Time       `json:"wall_time"`   // физическое время создания (информационно)
	RecordID   string          `json:"record_id"`   // идентификатор доменной сущности (UUID)
	RecordType RecordType      `json:"record_type"` // тип сущности
	Operation  Operation       `json:"operation"`   // insert | update | delete
	NodeID     string          `json:"node_id"`     // терминал, создавший изменение
	Payload    json.RawMessage `json:"payload"`     // полный JSON снимок сущности
	Vector     vclock.Vector   `json:"vector"`      // векторная метка причинности
	Seq        int64           `json:"seq"`         // серверный порядковый номер (0 = не присвоен)
}

// Key возвращает ключ записи вида "<record_type>/<record_id>".
// Используется как ключ в bbolt и для правила "не более одной
// ожидающей записи outbox на сущность".
func (c *ChangeRecord) Key() string {
	return RecordKey(c.RecordType, c.RecordID)
}

// Validate проверяет, что изменение корректно сформировано.
// Сервер использует эту проверку для постоянных (не повторяемых) отказов.
func (c *ChangeRecord) Validate() error {
	if c.RecordID == "" {
		return fmt.Errorf("change record: empty record_id")
	}
	if !c.RecordType.Valid() {
		return fmt.Errorf("change record %s: unknown record_type %q", c.RecordID, c.RecordType)
	}
	if !c.Operation.Valid() {
		return fmt.Errorf("change record %s: unknown operation %q", c.RecordID, c.Operation)
	}
	if c.NodeID == "" {
		return fmt.Errorf("change record %s: empty node_id", c.RecordID)
	}
	if len(c.Vector) == 0 {
		return fmt.Errorf("change record %s: empty vector timestamp", c.RecordID)
	}
	if c.Operation != OperationDelete && len(c.Payload) == 0 {
		return fmt.Errorf("change record %s: empty payload for %s", c.RecordID, c.Operation)
	}
	return nil
}

// Clone создает глубокую копию изменения.
func (c *ChangeRecord) Clone() *ChangeRecord {
	payload := make(json.RawMessage, len(c.Payload))
	copy(payload, c.Payload)

	return &ChangeRecord{
		RecordID:   c.RecordID,
		RecordType: c.RecordType,
		Operation:  c.Operation,
		NodeID:     c.NodeID,
		Payload:    payload,
		Vector:     c.Vector.Clone(),
		Seq:        c.Seq,
		WallTime:   c.WallTime,
	}
}

// RecordKey строит ключ записи из типа и идентификатора.
func RecordKey(rt RecordType, id string) string {
	return string(rt) + "/" + id
}

// StoredRecord представляет запись локального авторитетного хранилища:
// материализованное состояние сущности плюс векторная метка последнего
// примененного изменения (локального или удаленного).
//
// Инвариант: Vector никогда не регрессирует - каждая новая метка
// доминирует над предыдущей или равна ей.
type StoredRecord struct {
	UpdatedAt  time.Time       `json:"updated_at"` // время последнего применения
	RecordID   string          `json:"record_id"`
	RecordType RecordType      `json:"record_type"`
	Payload    json.RawMessage `json:"payload"`
	Vector     vclock.Vector   `json:"vector"`
	Deleted    bool            `json:"deleted"` // soft delete: запись скрыта, но метка сохранена
	Synced     bool            `json:"synced"`  // подтверждено ли последнее изменение сервером
}

// OutboxEntry запись локального журнала изменений (outbox), ожидающая
// подтверждения сервером. Несет состояние повторных попыток: outbox
// одновременно является очередью ретраев - одна запись на сущность.
//
// Инвариант: AttemptCount только растет; запись удаляется ровно один раз
// (при подтверждении) либо перемещается в набор постоянных отказов.
type OutboxEntry struct {
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	NextAttemptAt time.Time     `json:"next_attempt_at"` // раньше этого момента запись не отправляется
	LastError     string        `json:"last_error"`      // текст последней ошибки для диагностики
	Change        *ChangeRecord `json:"change"`
	AttemptCount  int           `json:"attempt_count"`
}

// Due сообщает, пора ли отправлять запись.
func (e *OutboxEntry) Due(now time.Time) bool {
	return !e.NextAttemptAt.After(now)
}

// Resolution способ разрешения обнаруженного конфликта
type Resolution string

const (
	ResolutionUnresolved Resolution = "unresolved"
	ResolutionLocalWins  Resolution = "local_wins"
	ResolutionRemoteWins Resolution = "remote_wins"
	ResolutionMerged     Resolution = "merged"
)

// Valid проверяет, что способ разрешения известен.
// Unresolved не является валидной командой разрешения.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionLocalWins, ResolutionRemoteWins, ResolutionMerged:
		return true
	default:
		return false
	}
}

// PendingConflict представляет обнаруженный причинный конфликт: удаленное
// изменение, конкурентное с локальным состоянием той же записи. Обе
// стороны сохраняются целиком; видимое состояние записи не меняется,
// пока конфликт не разрешен явно.
type PendingConflict struct {
	DetectedAt    time.Time       `json:"detected_at"`
	ResolvedAt    time.Time       `json:"resolved_at,omitzero"`
	RecordID      string          `json:"record_id"`
	RecordType    RecordType      `json:"record_type"`
	LocalPayload  json.RawMessage `json:"local_payload"`
	LocalVector   vclock.Vector   `json:"local_vector"`
	RemotePayload json.RawMessage `json:"remote_payload"`
	RemoteVector  vclock.Vector   `json:"remote_vector"`
	RemoteNodeID  string          `json:"remote_node_id"`
	Resolution    Resolution      `json:"resolution"`
	ResolvedBy    string          `json:"resolved_by,omitempty"`
	RemoteSeq     int64           `json:"remote_seq"`
	LocalDeleted  bool            `json:"local_deleted"`
	RemoteDeleted bool            `json:"remote_deleted"`
}

// Key возвращает ключ конфликта, совпадающий с ключом записи.
// Повторная доставка того же конкурентного изменения не создает
// второй конфликт.
func (pc *PendingConflict) Key() string {
	return RecordKey(pc.RecordType, pc.RecordID)
}
