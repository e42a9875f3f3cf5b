package conflict

import (
	"fmt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/vclock"
)

// Decision описывает решение детектора для входящего удаленного изменения.
type Decision int

const (
	// DecisionApply удаленное изменение строго новее или записи нет локально
	DecisionApply Decision = iota
	// DecisionIgnore удаленное изменение устарело или уже доставлялось
	DecisionIgnore
	// DecisionConflict изменения конкурентны, нужно решение оператора
	DecisionConflict
)

// String возвращает текстовое представление решения.
func (d Decision) String() string {
	switch d {
	case DecisionApply:
		return "apply"
	case DecisionIgnore:
		return "ignore"
	case DecisionConflict:
		return "conflict"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Classify принимает локальную запись (nil, если ее нет) и векторную метку
// удаленного изменения и возвращает решение:
//
//   - записи нет локально: чистая вставка, применяем
//   - remote After local: применяем
//   - remote Before или Equal: игнорируем (устаревшее или дубликат)
//   - конкурентные метки: конфликт, молча не перезаписываем
//
// Наличие неотправленной локальной правки ничего не меняет: конкурентная
// пара идет через детектор независимо от того, успела ли локальная
// сторона синхронизироваться.
func Classify(local *models.StoredRecord, remote vclock.Vector) Decision {
	if local == nil {
		return DecisionApply
	}

	switch remote.Compare(local.Vector) {
	case vclock.After:
		return DecisionApply
	case vclock.Before, vclock.Equal:
		return DecisionIgnore
	default:
		return DecisionConflict
	}
}
