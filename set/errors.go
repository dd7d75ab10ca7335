package set

import "github.com/pkg/errors"

var ErrCorrupted = errors.New("ordered set is corrupted")
