package pdf

import "costindex/go_backend/internal/domain/basket"

type Generator interface {
	Generate(items []basket.Item) ([]byte, error)
}
