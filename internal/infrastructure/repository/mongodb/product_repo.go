package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	collection *mongo.Collection
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	filter := bson.M{"_id": id, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// IncCommentCount adjusts the denormalized engagement counter. Delta is
// negative when a delete cascade removes a subtree.
func (r *ProductRepository) IncCommentCount(ctx context.Context, id string, delta int) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"comment_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update comment count: %w", err)
	}
	if result.MatchedCount == 0 {
		return contract.ErrProductNotFound
	}
	return nil
}
