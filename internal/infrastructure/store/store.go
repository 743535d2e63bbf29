package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/natnaelw/vendora/internal/dto"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

// ThreadCacheStore keeps the anonymous-viewer comment tree and the comment
// count per product in Redis. Mutations invalidate both keys, so readers
// always observe the backend's post-mutation state on the next load.
type ThreadCacheStore struct {
	rdb       *redis.Client
	threadTTL time.Duration
	countTTL  time.Duration
}

var _ usecasecontract.IThreadCache = (*ThreadCacheStore)(nil)

func NewThreadCacheStore(rdb *redis.Client) *ThreadCacheStore {
	return &ThreadCacheStore{
		rdb:       rdb,
		threadTTL: 10 * time.Minute,
		countTTL:  10 * time.Minute,
	}
}

func threadKey(productID string) string { return fmt.Sprintf("comments:thread:%s", productID) }
func countKey(productID string) string  { return fmt.Sprintf("comments:count:%s", productID) }

func (c *ThreadCacheStore) GetThread(ctx context.Context, productID string) (*dto.ThreadResponse, bool, error) {
	b, err := c.rdb.Get(ctx, threadKey(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var thread dto.ThreadResponse
	if err := json.Unmarshal(b, &thread); err != nil {
		return nil, false, nil
	}
	return &thread, true, nil
}

func (c *ThreadCacheStore) SetThread(ctx context.Context, productID string, thread *dto.ThreadResponse) error {
	data, err := json.Marshal(thread)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, threadKey(productID), data, c.threadTTL).Err()
}

func (c *ThreadCacheStore) GetCount(ctx context.Context, productID string) (int64, bool, error) {
	s, err := c.rdb.Get(ctx, countKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *ThreadCacheStore) SetCount(ctx context.Context, productID string, count int64) error {
	return c.rdb.Set(ctx, countKey(productID), strconv.FormatInt(count, 10), c.countTTL).Err()
}

// InvalidateProduct drops both keys for a product after any mutation.
func (c *ThreadCacheStore) InvalidateProduct(ctx context.Context, productID string) error {
	return c.rdb.Del(ctx, threadKey(productID), countKey(productID)).Err()
}
