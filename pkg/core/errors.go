package core

import "errors"

// Common errors.
var (
	ErrRetrieval      = errors.New("dataset retrieval failed")
	ErrNotWatchable   = errors.New("source does not support watching")
	ErrUnknownDocType = errors.New("unknown document type")
	ErrNoSource       = errors.New("no dataset source configured")
)
