package app

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message text required")

	// ErrArchiveNotConfigured is returned by transcript export when no object
	// store is wired in.
	ErrArchiveNotConfigured = errors.New("transcript archive not configured")
)
