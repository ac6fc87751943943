package server

import "errors"

var (
	// ErrDuplicateConnection indicates a connection id was registered twice.
	// Connection ids are server generated, so this points at a transport bug.
	ErrDuplicateConnection = errors.New("connection id already registered")
	// ErrUnknownConnection indicates an operation referenced a connection
	// which is not in the registry.
	ErrUnknownConnection = errors.New("unknown connection")
	// ErrAlreadyAuthenticated indicates an attempt to bind an authenticated
	// connection to a different user.
	ErrAlreadyAuthenticated = errors.New("connection already authenticated")
	// ErrNotAuthenticated indicates an operation which requires an
	// authenticated connection.
	ErrNotAuthenticated = errors.New("connection not authenticated")
)
