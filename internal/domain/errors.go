package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrBuildNotFound     = errors.New("build not found")
	ErrGarageProNotFound = errors.New("garage pro not found")
	ErrProfileNotFound   = errors.New("copilot profile not found")
	ErrMessageNotFound   = errors.New("message not found")

	ErrGarageProExists = errors.New("user already has a garage profile")

	ErrCannotSwipeSelf = errors.New("cannot swipe yourself")
	ErrInvalidAction   = errors.New("invalid swipe action")
	ErrNotMatched      = errors.New("users are not matched")

	ErrNotOwner     = errors.New("resource is owned by another user")
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidToken = errors.New("invalid or expired token")
)
