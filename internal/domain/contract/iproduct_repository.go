package contract

import (
	"context"

	"github.com/natnaelw/vendora/internal/domain/entity"
)

// IProductRepository is the slice of the catalog this service touches. The
// catalog service owns product documents; comments only validate existence
// and keep the engagement counter current.
type IProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
	IncCommentCount(ctx context.Context, id string, delta int) error
}
