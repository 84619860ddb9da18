package nodes

import "errors"

var (
	ErrNodeDestroyed = errors.New("node is destroyed")
	ErrNodeExists    = errors.New("node already exists")
	ErrNodeNotFound  = errors.New("node not found")
	ErrInvalidConfig = errors.New("invalid scene configuration")
)
