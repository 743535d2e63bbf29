package entity

import "time"

// ReactionKind names a reaction tally a viewer can toggle on a comment.
type ReactionKind string

const (
	ReactionLikes  ReactionKind = "likes"
	ReactionHearts ReactionKind = "hearts"
)

// IsValid reports whether the kind is one of the supported tallies.
func (k ReactionKind) IsValid() bool {
	return k == ReactionLikes || k == ReactionHearts
}

// Comment is a single message in a product thread. A nil ParentID marks a
// root comment; replies reference their parent within the same product.
type Comment struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ProductID  string    `bson:"product_id" json:"product_id"`
	AuthorID   string    `bson:"author_id" json:"user_id"`
	AuthorName string    `bson:"author_name" json:"user_name"`
	Body       string    `bson:"body" json:"comment"`
	ParentID   *string   `bson:"parent_id" json:"parent_id"`
	LikeCount  int       `bson:"like_count" json:"-"`
	HeartCount int       `bson:"heart_count" json:"-"`
	IsDeleted  bool      `bson:"is_deleted" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Reaction records one user's active reaction of one kind on one comment.
// Toggling the same kind again soft-deletes the record.
type Reaction struct {
	ID        string       `bson:"_id,omitempty"`
	CommentID string       `bson:"comment_id"`
	UserID    string       `bson:"user_id"`
	Kind      ReactionKind `bson:"kind"`
	IsDeleted bool         `bson:"is_deleted"`
	CreatedAt time.Time    `bson:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at"`
}
