package domain

import "errors"

// ErrChapterNotFound is returned when a chapter ID cannot be resolved by the loader.
var ErrChapterNotFound = errors.New("chapter not found")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
