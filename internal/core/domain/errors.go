package domain

import (
	"errors"
	"fmt"
)

// Base error kinds. Entity errors wrap one of these so callers can match on
// the kind with errors.Is without knowing the entity.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

var (
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrRoomExists          = fmt.Errorf("room %w", ErrConflict)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrUserExists          = fmt.Errorf("user %w", ErrConflict)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
)
