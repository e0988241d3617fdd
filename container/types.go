// SPDX-License-Identifier: MIT

package container

import "errors"

// Sentinel errors for container operations.
var (
	// ErrBadCapacity indicates a capacity below 1.
	ErrBadCapacity = errors.New("container: capacity must be >= 1")

	// ErrFull indicates a push onto a full bounded container.
	ErrFull = errors.New("container: container is full")

	// ErrEmpty indicates a read from an empty container.
	ErrEmpty = errors.New("container: container is empty")
)
