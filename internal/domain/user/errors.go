package user

import "errors"

// ErrEmailAlreadyExists is the duplicate-email business failure. Both the
// engine's pre-check and the storage unique index surface it, so the losing
// writer of a concurrent registration still reports a conflict.
var ErrEmailAlreadyExists = errors.New("email already registered")
