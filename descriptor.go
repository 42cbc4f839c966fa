package modmeta

import "github.com/simonhull/modmeta/internal/types"

// ModDescriptor is an alias to types.ModDescriptor.
// Re-exporting from internal/types to maintain public API.
type ModDescriptor = types.ModDescriptor
