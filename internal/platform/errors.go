package platform

import (
	"errors"
)

// ErrPackageNotFound is returned when a package row does not exist for the given external code.
var ErrPackageNotFound = errors.New("package not found")
