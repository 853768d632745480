package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"costindex/go_backend/internal/domain/basket"
)

// idBase keeps generated ids visually distinct from the small ids the
// extension uses for its own local records.
const idBase = 1000

type Store struct {
	mu     sync.Mutex
	lastID int64
	items  []basket.Item
}

func New() *Store {
	return &Store{lastID: idBase}
}

func (s *Store) Insert(ctx context.Context, item basket.NewItem) (basket.Item, error) {
	if strings.TrimSpace(item.ProductName) == "" || strings.TrimSpace(item.Price) == "" {
		return basket.Item{}, basket.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	stored := basket.Item{
		ID:                s.lastID,
		UserID:            item.UserID,
		ProductName:       item.ProductName,
		Price:             item.Price,
		Store:             item.Store,
		Category:          item.Category,
		ImageURL:          item.ImageURL,
		DateAdded:         time.Now().UTC(),
		IsRegularPurchase: item.IsRegularPurchase,
	}
	s.items = append(s.items, stored)
	return stored, nil
}

func (s *Store) List(ctx context.Context, userID *int64) ([]basket.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]basket.Item, 0, len(s.items))
	for _, it := range s.items {
		if userID != nil && it.UserID != *userID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id int64) (basket.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return basket.Item{}, basket.ErrNotFound
}

func (s *Store) Update(ctx context.Context, id int64, upd basket.ItemUpdate) (basket.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		applyUpdate(&s.items[i], upd)
		return s.items[i], nil
	}
	return basket.Item{}, basket.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return basket.ErrNotFound
}

func applyUpdate(it *basket.Item, upd basket.ItemUpdate) {
	if upd.ProductName != nil && strings.TrimSpace(*upd.ProductName) != "" {
		it.ProductName = *upd.ProductName
	}
	if upd.Price != nil && strings.TrimSpace(*upd.Price) != "" {
		it.Price = *upd.Price
	}
	if upd.UserID != nil {
		it.UserID = *upd.UserID
	}
	if upd.Store != nil {
		it.Store = *upd.Store
	}
	if upd.Category != nil {
		it.Category = *upd.Category
	}
	if upd.ImageURL != nil {
		it.ImageURL = *upd.ImageURL
	}
	if upd.IsRegularPurchase != nil {
		it.IsRegularPurchase = *upd.IsRegularPurchase
	}
}
