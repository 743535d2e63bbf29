package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	"github.com/natnaelw/vendora/internal/infrastructure/uuidgen"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCommentCreation = errors.New("failed to create comment")
	ErrCommentDeletion = errors.New("failed to delete comment")
	ErrReactionToggle  = errors.New("failed to toggle reaction")
)

type CommentRepository struct {
	collection         *mongo.Collection
	reactionCollection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection:         db.Collection("comments"),
		reactionCollection: db.Collection("comment_reactions"),
	}
}

// Core CRUD Operations

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuidgen.NewGenerator().NewUUID()
	}
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	comment.IsDeleted = false

	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommentCreation, err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	filter := bson.M{"_id": id, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// GetByProduct returns every live comment of the product, roots and replies
// alike, ordered by created_at ascending so tree assembly preserves posting
// order at every level.
func (r *CommentRepository) GetByProduct(ctx context.Context, productID string) ([]*entity.Comment, error) {
	filter := bson.M{
		"product_id": productID,
		"is_deleted": false,
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// SoftDelete tombstones the given comments. Tombstoned documents are
// invisible to every read path in this repository.
func (r *CommentRepository) SoftDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}, "is_deleted": false}
	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommentDeletion, err)
	}
	if result.MatchedCount == 0 {
		return contract.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	filter := bson.M{
		"product_id": productID,
		"is_deleted": false,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// Reaction system

// ToggleReaction flips the user's reaction of one kind on one comment inside
// a session: the reaction document and the comment's counter move together.
// Returns whether the reaction is active after the call.
func (r *CommentRepository) ToggleReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (bool, error) {
	active, err := r.hasActiveReaction(ctx, commentID, userID, kind)
	if err != nil {
		return false, err
	}

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return false, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	counterField := "like_count"
	if kind == entity.ReactionHearts {
		counterField = "heart_count"
	}

	err = mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if active {
			// Remove: tombstone the reaction and decrement the tally.
			filter := bson.M{
				"comment_id": commentID,
				"user_id":    userID,
				"kind":       kind,
				"is_deleted": false,
			}
			update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
			if _, err := r.reactionCollection.UpdateOne(sc, filter, update); err != nil {
				return err
			}
			_, err := r.collection.UpdateOne(sc,
				bson.M{"_id": commentID},
				bson.M{"$inc": bson.M{counterField: -1}})
			return err
		}

		// Add: upsert the reaction record and increment the tally.
		filter := bson.M{
			"comment_id": commentID,
			"user_id":    userID,
			"kind":       kind,
		}
		update := bson.M{
			"$set": bson.M{"is_deleted": false, "updated_at": time.Now()},
			"$setOnInsert": bson.M{
				"_id":        uuidgen.NewGenerator().NewUUID(),
				"created_at": time.Now(),
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := r.reactionCollection.UpdateOne(sc, filter, update, opts); err != nil {
			return err
		}
		_, err := r.collection.UpdateOne(sc,
			bson.M{"_id": commentID},
			bson.M{"$inc": bson.M{counterField: 1}})
		return err
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrReactionToggle, err)
	}

	return !active, nil
}

// HasUserReacted reports whether the user holds any active reaction, of
// either kind, on the comment.
func (r *CommentRepository) HasUserReacted(ctx context.Context, commentID, userID string) (bool, error) {
	filter := bson.M{
		"comment_id": commentID,
		"user_id":    userID,
		"is_deleted": false,
	}
	count, err := r.reactionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction status: %w", err)
	}
	return count > 0, nil
}

// GetUserReactions returns the subset of commentIDs the user has actively
// reacted to, as a membership map.
func (r *CommentRepository) GetUserReactions(ctx context.Context, userID string, commentIDs []string) (map[string]bool, error) {
	reacted := make(map[string]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return reacted, nil
	}

	filter := bson.M{
		"user_id":    userID,
		"comment_id": bson.M{"$in": commentIDs},
		"is_deleted": false,
	}

	ids, err := r.reactionCollection.Distinct(ctx, "comment_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer reactions: %w", err)
	}
	for _, id := range ids {
		if s, ok := id.(string); ok {
			reacted[s] = true
		}
	}
	return reacted, nil
}

func (r *CommentRepository) hasActiveReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (bool, error) {
	filter := bson.M{
		"comment_id": commentID,
		"user_id":    userID,
		"kind":       kind,
		"is_deleted": false,
	}
	count, err := r.reactionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction status: %w", err)
	}
	return count > 0, nil
}
