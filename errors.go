package qptbl

import "errors"

// ErrDuplicateKey is returned by Add when the key is already present.
// The stored value is left untouched; use Set to overwrite.
var ErrDuplicateKey = errors.New("qptbl: duplicate key")
