package extractor

import "errors"

var (
	// ErrUnknownSource is returned when a URL belongs to neither source page family.
	ErrUnknownSource = errors.New("url doesn't match any known source page family")
	// ErrEmptyDocument is returned when the fetched page has no parseable content.
	ErrEmptyDocument = errors.New("source page is empty")
)
