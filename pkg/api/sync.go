package api

import (
	"encoding/json"
	"time"
)

// ChangeRecord представляет одно изменение доменной записи в wire-формате.
// Payload - полный снимок сущности. Seq присваивается сервером и
// присутствует только на записях, принятых в серверный журнал.
type ChangeRecord struct {
	WallTime   time.Time         `json:"wall_time"`
	RecordID   string            `json:"record_id"`
	RecordType string            `json:"record_type"` // product | inventory | customer | transaction
	Operation  string            `json:"operation"`   // insert | update | delete
	NodeID     string            `json:"node_id"`     // терминал-автор изменения
	Payload    json.RawMessage   `json:"payload"`
	Vector     map[string]uint64 `json:"vector"` // векторная метка причинности
	Seq        int64             `json:"seq,omitempty"`
}

// PushRequest представляет пакет локальных изменений терминала.
// Записи идут без Seq - номер присваивает сервер.
type PushRequest struct {
	Changes []ChangeRecord `json:"changes"`
}

// Причины отказа, которые сервер возвращает в RecordStatus.Reason.
const (
	RejectReasonValidation = "validation" // изменение некорректно, повтор бесполезен
	RejectReasonStorage    = "storage"    // временная ошибка хранилища, можно повторить
)

// RecordStatus результат приема одного изменения сервером.
// Retryable различает временные отказы (повторить позже) и постоянные
// (не повторять, показать пользователю).
type RecordStatus struct {
	RecordID   string `json:"record_id"`
	RecordType string `json:"record_type"`
	Reason     string `json:"reason,omitempty"`  // причина отказа
	Message    string `json:"message,omitempty"` // подробности для диагностики
	Seq        int64  `json:"seq,omitempty"`     // присвоенный номер (только при Accepted)
	Accepted   bool   `json:"accepted"`
	Retryable  bool   `json:"retryable"`
}

// PushResponse представляет постатусный ответ сервера на push.
// Порядок статусов совпадает с порядком записей запроса.
type PushResponse struct {
	Statuses []RecordStatus `json:"statuses"`
}

// PullResponse представляет страницу серверного журнала изменений.
// Записи упорядочены по возрастанию Seq; HasMore сообщает, остались ли
// еще страницы после MaxSeq.
type PullResponse struct {
	Changes []ChangeRecord `json:"changes"`
	MaxSeq  int64          `json:"max_seq"`  // максимальный Seq в этой странице
	HasMore bool           `json:"has_more"` // есть ли записи после MaxSeq
}
