package syncer

import (
	"fmt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/vclock"
	"github.com/iudanet/kassasync/pkg/api"
)

// toWireChange конвертирует изменение в wire-формат. Seq не передается:
// номер присваивает сервер.
func toWireChange(change *models.ChangeRecord) api.ChangeRecord {
	return api.ChangeRecord{
		WallTime:   change.WallTime,
		RecordID:   change.RecordID,
		RecordType: string(change.RecordType),
		Operation:  string(change.Operation),
		NodeID:     change.NodeID,
		Payload:    change.Payload,
		Vector:     change.Vector,
	}
}

// fromWireChange конвертирует запись серверного журнала в доменную модель,
// проверяя тип записи и операцию.
func fromWireChange(wire api.ChangeRecord) (*models.ChangeRecord, error) {
	rt := models.RecordType(wire.RecordType)
	if !rt.Valid() {
		return nil, fmt.Errorf("unknown record type: %q", wire.RecordType)
	}

	op := models.Operation(wire.Operation)
	if !op.Valid() {
		return nil, fmt.Errorf("unknown operation: %q", wire.Operation)
	}

	if wire.RecordID == "" {
		return nil, fmt.Errorf("empty record id")
	}
	if len(wire.Vector) == 0 {
		return nil, fmt.Errorf("empty vector clock")
	}

	return &models.ChangeRecord{
		WallTime:   wire.WallTime,
		RecordID:   wire.RecordID,
		RecordType: rt,
		Operation:  op,
		NodeID:     wire.NodeID,
		Payload:    wire.Payload,
		Vector:     vclock.Vector(wire.Vector),
		Seq:        wire.Seq,
	}, nil
}
