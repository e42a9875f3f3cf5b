package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/vclock"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс локальных мутаций терминала.
// Сервис никогда не ходит в сеть: мутация читает текущую запись,
// строит новую векторную метку и атомарно пишет состояние вместе
// с записью outbox. Отказ хранилища возвращается вызывающему
// синхронно - частичной записи не бывает.
type Service interface {
	SaveProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	AdjustInventory(ctx context.Context, item *models.InventoryItem) error
	ListInventory(ctx context.Context) ([]*models.InventoryItem, error)

	SaveCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)

	// RecordTransaction фиксирует продажу или прием в зачет.
	// Транзакции append-only: обновление и удаление не поддерживаются.
	RecordTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
}

// service handles terminal-side domain mutations
type service struct {
	records  storage.RecordStorage
	metadata storage.MetadataStorage
}

// NewService creates a new data service
func NewService(records storage.RecordStorage, metadata storage.MetadataStorage) Service {
	return &service{
		records:  records,
		metadata: metadata,
	}
}

// SaveProduct создает или обновляет товар
func (s *service) SaveProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return s.applyMutation(ctx, models.RecordTypeProduct, product.ID, product)
}

// GetProduct возвращает товар по идентификатору
func (s *service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product := &models.Product{}
	if err := s.getPayload(ctx, models.RecordTypeProduct, id, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts возвращает все неудаленные товары
func (s *service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	recs, err := s.records.ListRecords(ctx, models.RecordTypeProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*models.Product, 0, len(recs))
	for _, rec := range recs {
		product := &models.Product{}
		if err := json.Unmarshal(rec.Payload, product); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product %s: %w", rec.RecordID, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// DeleteProduct выполняет мягкое удаление товара
func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.applyDelete(ctx, models.RecordTypeProduct, id)
}

// AdjustInventory создает или обновляет складскую позицию
func (s *service) AdjustInventory(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return s.applyMutation(ctx, models.RecordTypeInventory, item.ID, item)
}

// ListInventory возвращает все складские позиции
func (s *service) ListInventory(ctx context.Context) ([]*models.InventoryItem, error) {
	recs, err := s.records.ListRecords(ctx, models.RecordTypeInventory)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	items := make([]*models.InventoryItem, 0, len(recs))
	for _, rec := range recs {
		item := &models.InventoryItem{}
		if err := json.Unmarshal(rec.Payload, item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inventory item %s: %w", rec.RecordID, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// SaveCustomer создает или обновляет покупателя
func (s *service) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	return s.applyMutation(ctx, models.RecordTypeCustomer, customer.ID, customer)
}

// GetCustomer возвращает покупателя по идентификатору
func (s *service) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer := &models.Customer{}
	if err := s.getPayload(ctx, models.RecordTypeCustomer, id, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers возвращает всех покупателей
func (s *service) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	recs, err := s.records.ListRecords(ctx, models.RecordTypeCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*models.Customer, 0, len(recs))
	for _, rec := range recs {
		customer := &models.Customer{}
		if err := json.Unmarshal(rec.Payload, customer); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer %s: %w", rec.RecordID, err)
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// RecordTransaction фиксирует продажу или прием в зачет
func (s *service) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	// Транзакции неизменяемы: повторная запись того же ID - ошибка
	_, err := s.records.GetRecord(ctx, models.RecordTypeTransaction, tx.ID)
	if err == nil {
		return fmt.Errorf("transaction %s already recorded", tx.ID)
	}
	if !errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("failed to check transaction: %w", err)
	}

	return s.applyMutation(ctx, models.RecordTypeTransaction, tx.ID, tx)
}

// ListTransactions возвращает все транзакции
func (s *service) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	recs, err := s.records.ListRecords(ctx, models.RecordTypeTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txs := make([]*models.Transaction, 0, len(recs))
	for _, rec := range recs {
		tx := &models.Transaction{}
		if err := json.Unmarshal(rec.Payload, tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", rec.RecordID, err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// applyMutation строит локальное изменение: инкремент векторной метки
// от текущего состояния записи, полный снимок сущности в payload, одна
// атомарная запись (состояние + outbox).
func (s *service) applyMutation(ctx context.Context, rt models.RecordType, id string, entity any) error {
	nodeID, err := s.metadata.EnsureNodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get node id: %w", err)
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	op := models.OperationInsert
	existing, err := s.records.GetRecord(ctx, rt, id)
	switch {
	case err == nil:
		// Правка поверх мягко удаленной записи воскрешает ее как insert
		if !existing.Deleted {
			op = models.OperationUpdate
		}
	case errors.Is(err, storage.ErrRecordNotFound):
	default:
		return fmt.Errorf("failed to read current record: %w", err)
	}

	var base vclock.Vector
	if existing != nil {
		base = existing.Vector
	}
	vec := base.Increment(nodeID)
	now := time.Now()

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
		Deleted:    false,
		Synced:     false,
		UpdatedAt:  now,
	}

	if err := s.records.ApplyLocalChange(ctx, rec, change); err != nil {
		return fmt.Errorf("failed to apply mutation: %w", err)
	}

	return nil
}

// applyDelete выполняет мягкое удаление: запись остается в хранилище
// с флагом Deleted, на сервер уходит операция delete.
func (s *service) applyDelete(ctx context.Context, rt models.RecordType, id string) error {
	nodeID, err := s.metadata.EnsureNodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get node id: %w", err)
	}

	existing, err := s.records.GetRecord(ctx, rt, id)
	if err != nil {
		return fmt.Errorf("failed to read current record: %w", err)
	}
	if existing.Deleted {
		return fmt.Errorf("record %s already deleted", models.RecordKey(rt, id))
	}

	vec := existing.Vector.Increment(nodeID)
	now := time.Now()

	change := &models.ChangeRecord{
		RecordID:   id,
		RecordType: rt,
		Operation:  models.OperationDelete,
		NodeID:     nodeID,
		Vector:     vec,
		WallTime:   now,
	}

	rec := &models.StoredRecord{
		RecordID:   id,
		RecordType: rt,
		Payload:    existing.Payload,
		Vector:     vec,
		Deleted:    true,
		Synced:     false,
		UpdatedAt:  now,
	}

	if err := s.records.ApplyLocalChange(ctx, rec, change); err != nil {
		return fmt.Errorf("failed to apply delete: %w", err)
	}

	return nil
}

// getPayload читает запись и десериализует полный снимок сущности
func (s *service) getPayload(ctx context.Context, rt models.RecordType, id string, entity any) error {
	rec, err := s.records.GetRecord(ctx, rt, id)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}
	if rec.Deleted {
		return storage.ErrRecordNotFound
	}

	if err := json.Unmarshal(rec.Payload, entity); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
