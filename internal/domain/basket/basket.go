package basket

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrMissingFields = errors.New("product name and price are required")
)

type Item struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	ProductName       string    `json:"productName"`
	Price             string    `json:"price"`
	Store             string    `json:"store,omitempty"`
	Category          string    `json:"category,omitempty"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	DateAdded         time.Time `json:"dateAdded"`
	IsRegularPurchase bool      `json:"isRegularPurchase"`
}

type NewItem struct {
	UserID            int64
	ProductName       string
	Price             string
	Store             string
	Category          string
	ImageURL          string
	IsRegularPurchase bool
}

// ItemUpdate carries only the fields the client actually sent; a nil field
// leaves the stored value untouched. A present but empty ProductName or
// Price is also ignored: required fields cannot be cleared through update.
type ItemUpdate struct {
	UserID            *int64  `json:"userId"`
	ProductName       *string `json:"productName"`
	Price             *string `json:"price"`
	Store             *string `json:"store"`
	Category          *string `json:"category"`
	ImageURL          *string `json:"imageUrl"`
	IsRegularPurchase *bool   `json:"isRegularPurchase"`
}

// Store owns the basket item collection. Ids are unique and strictly
// increasing for the lifetime of the backing storage.
type Store interface {
	Insert(ctx context.Context, item NewItem) (Item, error)
	List(ctx context.Context, userID *int64) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Update(ctx context.Context, id int64, upd ItemUpdate) (Item, error)
	Delete(ctx context.Context, id int64) error
}
