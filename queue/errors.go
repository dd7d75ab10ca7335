package queue

import "errors"

var (
	ErrOverflow = errors.New("queue is full")
	ErrEmpty    = errors.New("queue is empty")
)
