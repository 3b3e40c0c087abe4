package errs

import "errors"

// Store sentinels. ErrStoreWrite marks a failed snapshot write after a
// mutation; the in-memory state is still the authority when it is returned.
var (
	ErrNotFound   = errors.New("not found")
	ErrStoreWrite = errors.New("store write failed")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStoreWrite(err error) bool {
	return errors.Is(err, ErrStoreWrite)
}
