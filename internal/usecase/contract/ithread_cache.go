package usecasecontract

import (
	"context"

	"github.com/natnaelw/vendora/internal/dto"
)

// IThreadCache caches the anonymous-viewer thread and the comment count per
// product. Every mutation invalidates the product's entries, which is what
// makes "reload after mutation" observable as fresh data rather than a
// stale tree.
type IThreadCache interface {
	GetThread(ctx context.Context, productID string) (*dto.ThreadResponse, bool, error)
	SetThread(ctx context.Context, productID string, thread *dto.ThreadResponse) error
	GetCount(ctx context.Context, productID string) (int64, bool, error)
	SetCount(ctx context.Context, productID string, count int64) error
	InvalidateProduct(ctx context.Context, productID string) error
}
