package entity

import "time"

// Product mirrors the catalog document this service needs: comments attach
// to a product and the comment_count counter is denormalized onto it.
type Product struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	VendorID     string    `bson:"vendor_id" json:"vendor_id"`
	CommentCount int       `bson:"comment_count" json:"comment_count"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
