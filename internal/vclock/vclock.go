package vclock

import (
	"fmt"
	"sort"
	"strings"
)

// Ordering описывает причинно-следственное отношение между двумя
// векторными метками времени.
type Ordering int

const (
	// Equal - метки идентичны (повторная доставка того же изменения)
	Equal Ordering = iota
	// Before - первая метка причинно предшествует второй
	Before
	// After - первая метка причинно следует за второй
	After
	// Concurrent - ни одна из меток не доминирует (конкурентные изменения)
	Concurrent
)

// String возвращает текстовое представление отношения.
func (o Ordering) String() string {
	switch o {
	case Equal:
		return "equal"
	case Before:
		return "before"
	case After:
		return "after"
	case Concurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Vector представляет векторную метку времени: отображение идентификатора
// узла в монотонно возрастающий счетчик. Узел инкрементирует только свою
// запись и никогда не уменьшает чужие.
//
// Все операции возвращают новые значения и не изменяют исходный Vector -
// тип используется как неизменяемый.
type Vector map[string]uint64

// New создает пустую векторную метку.
func New() Vector {
	return make(Vector)
}

// Clone создает глубокую копию метки.
func (v Vector) Clone() Vector {
	result := make(Vector, len(v))
	for node, counter := range v {
		result[node] = counter
	}
	return result
}

// Counter возвращает счетчик узла. Отсутствующая запись трактуется как 0.
func (v Vector) Counter(nodeID string) uint64 {
	return v[nodeID]
}

// Increment возвращает новую метку, в которой счетчик узла nodeID
// увеличен на единицу. Остальные записи не изменяются.
func (v Vector) Increment(nodeID string) Vector {
	result := v.Clone()
	result[nodeID]++
	return result
}

// Merge возвращает поэлементный максимум двух меток. Используется, когда
// узел наблюдает удаленную метку и хочет, чтобы его будущие записи
// причинно следовали за ней.
func (v Vector) Merge(other Vector) Vector {
	result := v.Clone()
	for node, counter := range other {
		if counter > result[node] {
			result[node] = counter
		}
	}
	return result
}

// Compare определяет причинное отношение между двумя метками:
//   - Equal: все счетчики совпадают
//   - Before: каждая запись v <= соответствующей записи other,
//     и хотя бы одна строго меньше
//   - After: симметрично Before
//   - Concurrent: ни одна метка не доминирует
//
// Отсутствующие записи трактуются как 0.
func (v Vector) Compare(other Vector) Ordering {
	// vLess - найдена запись, где v < other; otherLess - наоборот
	vLess := false
	otherLess := false

	for node, counter := range v {
		if o := other[node]; counter < o {
			vLess = true
		} else if counter > o {
			otherLess = true
		}
	}
	for node, counter := range other {
		if counter > v[node] {
			vLess = true
		}
	}

	switch {
	case vLess && otherLess:
		return Concurrent
	case vLess:
		return Before
	case otherLess:
		return After
	default:
		return Equal
	}
}

// Descends сообщает, доминирует ли v над other или равна ей.
// Удобная форма для проверки "метка записи никогда не регрессирует".
func (v Vector) Descends(other Vector) bool {
	ord := v.Compare(other)
	return ord == After || ord == Equal
}

// String возвращает детерминированное текстовое представление вида
// {node-a:1 node-b:3}. Используется в логах и сообщениях об ошибках.
func (v Vector) String() string {
	nodes := make([]string, 0, len(v))
	for node := range v {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, node := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", node, v[node])
	}
	sb.WriteByte('}')
	return sb.String()
}
