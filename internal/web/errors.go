package web

import "errors"

var (
	// ErrStart wraps failures to start listening.
	ErrStart = errors.New("failed to start http server")

	// ErrShutdown wraps failures during graceful shutdown.
	ErrShutdown = errors.New("failed to shutdown http server")
)
