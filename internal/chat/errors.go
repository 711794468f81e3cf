package chat

import "errors"

var (
	ErrInvalidInput = errors.New("room name and nickname are required")
	ErrNotAMember   = errors.New("connection is not in a room")
	ErrEmptyMessage = errors.New("message has no text or image")
)
