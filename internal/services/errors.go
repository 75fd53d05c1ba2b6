package services

import (
	"errors"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAlreadyLiked means a Like row already exists for this (user, post) pair.
	ErrAlreadyLiked = errors.New("user already liked this post")
	ErrEmailTaken   = errors.New("email already registered")
)

// ValidationError reports malformed or missing input. Handlers map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
