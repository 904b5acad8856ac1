package manifest

import "errors"

var (
	// ErrNotFound indicates the manifest file is missing or unreadable.
	ErrNotFound = errors.New("manifest not found")

	// ErrParse indicates the manifest is not valid JSON.
	ErrParse = errors.New("manifest parse error")
)
