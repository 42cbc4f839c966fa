package modmeta

import (
	"github.com/simonhull/modmeta/internal/types"
)

// ArtifactKind is an alias to types.ArtifactKind.
// Re-exporting from internal/types to maintain public API.
type ArtifactKind = types.ArtifactKind

// MetadataFormat is an alias to types.MetadataFormat.
// Re-exporting from internal/types to maintain public API.
type MetadataFormat = types.MetadataFormat

// Re-export artifact kinds.
const (
	KindUnknown   = types.KindUnknown
	KindArchive   = types.KindArchive
	KindDirectory = types.KindDirectory
	KindLitemod   = types.KindLitemod
)

// Re-export metadata formats.
const (
	FormatNone      = types.FormatNone
	FormatMCModInfo = types.FormatMCModInfo
	FormatFabric    = types.FormatFabric
	FormatForge     = types.FormatForge
	FormatLitemod   = types.FormatLitemod
)

// DetectKind is a wrapper around types.DetectKind.
//
// Parse never classifies artifacts itself; DetectKind is offered for
// callers that have only a path.
func DetectKind(path string) (ArtifactKind, error) {
	return types.DetectKind(path)
}

// ParseArtifactKind is a wrapper around types.ParseArtifactKind.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	return types.ParseArtifactKind(s)
}
