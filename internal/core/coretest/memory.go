// Package coretest provides an in-memory core.Repository for tests.
package coretest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/JonMunkholm/storefront/internal/core"
	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrInjected is returned by operations named in MemoryRepository.FailOn.
var ErrInjected = errors.New("injected failure: connection refused")

// MemoryRepository keeps rows in maps. Every insert advances an internal
// clock by one second so newest-first ordering is deterministic.
type MemoryRepository struct {
	mu sync.Mutex

	stores  map[int64]db.Store
	items   map[int64]db.CatalogItem
	audit   []db.AuditLog
	nextID  int64
	clock   time.Time
	failOn  map[string]error
	failRow int // CreateCatalogItems fails on this 1-based row; 0 disables
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		stores: make(map[int64]db.Store),
		items:  make(map[int64]db.CatalogItem),
		clock:  time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		failOn: make(map[string]error),
	}
}

var _ core.Repository = (*MemoryRepository)(nil)

// FailOn makes the named operation ("CreateStore", "ListStores", ...) return
// err. A nil err uses ErrInjected.
func (m *MemoryRepository) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	m.failOn[op] = err
}

// FailBatchAtRow makes CreateCatalogItems fail on the given 1-based row,
// after the earlier rows were written, to exercise rollback.
func (m *MemoryRepository) FailBatchAtRow(row int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRow = row
}

func (m *MemoryRepository) fail(op string) error {
	if err, ok := m.failOn[op]; ok {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (m *MemoryRepository) tick() pgtype.Timestamptz {
	m.clock = m.clock.Add(time.Second)
	return pgtype.Timestamptz{Time: m.clock, Valid: true}
}

func (m *MemoryRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *MemoryRepository) CreateStore(_ context.Context, p db.CreateStoreParams) (db.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateStore"); err != nil {
		return db.Store{}, err
	}

	s := db.Store{
		ID:             m.id(),
		ShopName:       p.ShopName,
		Industry:       p.Industry,
		Description:    p.Description,
		Established:    p.Established,
		Prefecture:     p.Prefecture,
		City:           p.City,
		StreetAddress:  p.StreetAddress,
		Phone:          p.Phone,
		Email:          p.Email,
		OpeningTime:    p.OpeningTime,
		ClosingTime:    p.ClosingTime,
		RegularHoliday: p.RegularHoliday,
		Parking:        p.Parking,
		WebsiteUrl:     p.WebsiteUrl,
		InstagramUrl:   p.InstagramUrl,
		XUrl:           p.XUrl,
		Announcement:   p.Announcement,
		CreatedAt:      m.tick(),
	}
	m.stores[s.ID] = s
	return s, nil
}

func (m *MemoryRepository) GetStore(_ context.Context, id int64) (db.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetStore"); err != nil {
		return db.Store{}, err
	}
	s, ok := m.stores[id]
	if !ok {
		return db.Store{}, fmt.Errorf("get store %d: %w", id, core.ErrNotFound)
	}
	return s, nil
}

func (m *MemoryRepository) ListStores(_ context.Context) ([]db.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListStores"); err != nil {
		return nil, err
	}

	out := make([]db.Store, 0, len(m.stores))
	for _, s := range m.stores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (m *MemoryRepository) insertItem(p db.CreateCatalogItemParams) (db.CatalogItem, error) {
	if _, ok := m.stores[p.StoreID]; !ok {
		return db.CatalogItem{}, fmt.Errorf("insert or update on table \"catalog_items\" violates foreign key constraint")
	}
	if p.Price < 0 {
		return db.CatalogItem{}, fmt.Errorf("new row for relation \"catalog_items\" violates check constraint")
	}
	now := m.tick()
	item := db.CatalogItem{
		ID:          m.id(),
		StoreID:     p.StoreID,
		Industry:    p.Industry,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageUrl:    p.ImageUrl,
		Category:    p.Category,
		AllergyInfo: p.AllergyInfo,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.items[item.ID] = item
	return item, nil
}

// CreateCatalogItems writes rows one by one and removes them all again if
// any row fails, mirroring a rolled-back transaction.
func (m *MemoryRepository) CreateCatalogItems(_ context.Context, params []db.CreateCatalogItemParams) ([]db.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateCatalogItems"); err != nil {
		return nil, err
	}

	items := make([]db.CatalogItem, 0, len(params))
	rollback := func() {
		for _, it := range items {
			delete(m.items, it.ID)
		}
	}
	for i, p := range params {
		if m.failRow == i+1 {
			rollback()
			return nil, fmt.Errorf("insert catalog batch: row %d: %w", i+1, ErrInjected)
		}
		item, err := m.insertItem(p)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("insert catalog batch: row %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *MemoryRepository) GetCatalogItem(_ context.Context, id int64) (db.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetCatalogItem"); err != nil {
		return db.CatalogItem{}, err
	}
	item, ok := m.items[id]
	if !ok {
		return db.CatalogItem{}, fmt.Errorf("get catalog item %d: %w", id, core.ErrNotFound)
	}
	return item, nil
}

func (m *MemoryRepository) ListActiveCatalogItems(_ context.Context, filter core.CatalogFilter) ([]db.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListActiveCatalogItems"); err != nil {
		return nil, err
	}

	params := filter.Params()
	out := make([]db.CatalogItem, 0, len(m.items))
	for _, item := range m.items {
		if !item.IsAvailable {
			continue
		}
		if params.Industry.Valid && item.Industry != params.Industry.String {
			continue
		}
		if params.StoreID.Valid && item.StoreID != params.StoreID.Int64 {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (m *MemoryRepository) UpdateCatalogItem(_ context.Context, id int64, update core.CatalogItemUpdate) (db.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("UpdateCatalogItem"); err != nil {
		return db.CatalogItem{}, err
	}

	item, ok := m.items[id]
	if !ok {
		return db.CatalogItem{}, core.ErrNotFound
	}
	p, err := update.Apply(item)
	if err != nil {
		return db.CatalogItem{}, err
	}

	item.Name = p.Name
	item.Price = p.Price
	item.Description = p.Description
	item.ImageUrl = p.ImageUrl
	item.Category = p.Category
	item.AllergyInfo = p.AllergyInfo
	item.IsAvailable = p.IsAvailable
	item.UpdatedAt = m.tick()
	m.items[id] = item
	return item, nil
}

func (m *MemoryRepository) DeleteCatalogItem(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("DeleteCatalogItem"); err != nil {
		return err
	}
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("delete catalog item %d: %w", id, core.ErrNotFound)
	}
	delete(m.items, id)
	return nil
}

func (m *MemoryRepository) InsertAuditLog(_ context.Context, p db.InsertAuditLogParams) (db.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("InsertAuditLog"); err != nil {
		return db.AuditLog{}, err
	}
	entry := db.AuditLog{
		ID:           pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Action:       p.Action,
		Severity:     p.Severity,
		EntityType:   p.EntityType,
		EntityID:     p.EntityID,
		IpAddress:    p.IpAddress,
		UserAgent:    p.UserAgent,
		RowsAffected: p.RowsAffected,
		BatchID:      p.BatchID,
		RowData:      p.RowData,
		Reason:       p.Reason,
		CreatedAt:    m.tick(),
	}
	m.audit = append(m.audit, entry)
	return entry, nil
}

func (m *MemoryRepository) ListAuditLogs(_ context.Context, limit int32) ([]db.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListAuditLogs"); err != nil {
		return nil, err
	}
	out := make([]db.AuditLog, 0, len(m.audit))
	for i := len(m.audit) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		out = append(out, m.audit[i])
	}
	return out, nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail("Ping")
}

// Stores returns a snapshot of every stored store, in id order.
func (m *MemoryRepository) Stores() []db.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.Store, 0, len(m.stores))
	for _, s := range m.stores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Items returns a snapshot of every catalog item, available or not, in id order.
func (m *MemoryRepository) Items() []db.CatalogItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.CatalogItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AuditLog returns every audit entry in insert order.
func (m *MemoryRepository) AuditLog() []db.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]db.AuditLog(nil), m.audit...)
}

func newer(a, b pgtype.Timestamptz, aID, bID int64) bool {
	if !a.Time.Equal(b.Time) {
		return a.Time.After(b.Time)
	}
	return aID > bID
}
