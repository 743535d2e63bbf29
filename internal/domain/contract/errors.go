package contract

import "errors"

// Shared not-found sentinels returned by repositories and matched with
// errors.Is at the transport layer.
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)
