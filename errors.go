package modmeta

import (
	"github.com/simonhull/modmeta/internal/types"
)

// EntryTooLargeError is an alias to types.EntryTooLargeError.
// Re-exporting from internal/types to maintain public API.
type EntryTooLargeError = types.EntryTooLargeError

// MalformedMetadataError is an alias to types.MalformedMetadataError.
// Re-exporting from internal/types to maintain public API.
type MalformedMetadataError = types.MalformedMetadataError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
