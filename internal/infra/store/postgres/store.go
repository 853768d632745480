package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"costindex/go_backend/internal/domain/basket"
)

// Store is the durable basket backend. The expected table is described in
// schema.sql next to this file.
type Store struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() { s.Pool.Close() }

const itemColumns = "id, user_id, product_name, price, store, category, image_url, date_added, is_regular_purchase"

func (s *Store) Insert(ctx context.Context, item basket.NewItem) (basket.Item, error) {
	if strings.TrimSpace(item.ProductName) == "" || strings.TrimSpace(item.Price) == "" {
		return basket.Item{}, basket.ErrMissingFields
	}

	stored := basket.Item{
		UserID:            item.UserID,
		ProductName:       item.ProductName,
		Price:             item.Price,
		Store:             item.Store,
		Category:          item.Category,
		ImageURL:          item.ImageURL,
		DateAdded:         time.Now().UTC(),
		IsRegularPurchase: item.IsRegularPurchase,
	}

	err := s.Pool.QueryRow(ctx,
		`INSERT INTO basket_items (user_id, product_name, price, store, category, image_url, date_added, is_regular_purchase)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		stored.UserID, stored.ProductName, stored.Price, stored.Store, stored.Category,
		stored.ImageURL, stored.DateAdded, stored.IsRegularPurchase,
	).Scan(&stored.ID)
	if err != nil {
		return basket.Item{}, err
	}
	return stored, nil
}

func (s *Store) List(ctx context.Context, userID *int64) ([]basket.Item, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID != nil {
		rows, err = s.Pool.Query(ctx,
			`SELECT `+itemColumns+` FROM basket_items WHERE user_id = $1 ORDER BY id`, *userID)
	} else {
		rows, err = s.Pool.Query(ctx,
			`SELECT `+itemColumns+` FROM basket_items ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]basket.Item, 0)
	for rows.Next() {
		var it basket.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (basket.Item, error) {
	var it basket.Item
	row := s.Pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM basket_items WHERE id = $1`, id)
	if err := scanItem(row, &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return basket.Item{}, basket.ErrNotFound
		}
		return basket.Item{}, err
	}
	return it, nil
}

func (s *Store) Update(ctx context.Context, id int64, upd basket.ItemUpdate) (basket.Item, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return basket.Item{}, err
	}
	defer tx.Rollback(ctx)

	var it basket.Item
	row := tx.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM basket_items WHERE id = $1 FOR UPDATE`, id)
	if err := scanItem(row, &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return basket.Item{}, basket.ErrNotFound
		}
		return basket.Item{}, err
	}

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

	_, err = tx.Exec(ctx,
		`UPDATE basket_items
		 SET user_id = $2, product_name = $3, price = $4, store = $5, category = $6,
		     image_url = $7, is_regular_purchase = $8
		 WHERE id = $1`,
		it.ID, it.UserID, it.ProductName, it.Price, it.Store, it.Category,
		it.ImageURL, it.IsRegularPurchase)
	if err != nil {
		return basket.Item{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return basket.Item{}, err
	}
	return it, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM basket_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return basket.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row, it *basket.Item) error {
	return row.Scan(&it.ID, &it.UserID, &it.ProductName, &it.Price, &it.Store,
		&it.Category, &it.ImageURL, &it.DateAdded, &it.IsRegularPurchase)
}
