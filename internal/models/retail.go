package models

import "time"

// Product представляет товар в каталоге терминала.
type Product struct {
	ID     string `json:"id"`     // UUID товара
	SKU    string `json:"sku"`    // артикул (уникален в рамках магазина)
	Name   string `json:"name"`   // наименование
	Price  int64  `json:"price"`  // цена в минимальных единицах валюты (копейки/центы)
	Active bool   `json:"active"` // доступен ли товар к продаже
}

// InventoryItem представляет складской остаток товара.
type InventoryItem struct {
	ID        string `json:"id"`         // UUID позиции
	ProductID string `json:"product_id"` // товар
	Location  string `json:"location"`   // склад/зал/витрина
	Quantity  int64  `json:"quantity"`   // текущий остаток
}

// Customer представляет покупателя.
type Customer struct {
	ID    string `json:"id"` // UUID покупателя
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// TransactionKind вид кассовой операции
type TransactionKind string

const (
	// TransactionSale обычная продажа
	TransactionSale TransactionKind = "sale"
	// TransactionTradeIn прием товара от покупателя (trade-in)
	TransactionTradeIn TransactionKind = "trade_in"
)

// TransactionLine одна строка чека.
type TransactionLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // цена на момент операции
}

// Transaction представляет кассовую операцию (продажу или trade-in).
// Записи транзакций неизменяемы после создания: правки оформляются
// отдельными корректирующими операциями, поэтому конфликты по ним
// возможны только при повторном использовании идентификатора.
type Transaction struct {
	CreatedAt  time.Time         `json:"created_at"`
	ID         string            `json:"id"` // UUID операции
	Kind       TransactionKind   `json:"kind"`
	OperatorID string            `json:"operator_id"` // кто провел операцию
	CustomerID string            `json:"customer_id,omitempty"`
	Lines      []TransactionLine `json:"lines"`
	Total      int64             `json:"total"` // итог в минимальных единицах валюты
}
