package types

// MetadataFormat identifies which metadata convention an entry follows.
type MetadataFormat int

const (
	// FormatNone means no recognized metadata was found.
	FormatNone MetadataFormat = iota
	// FormatMCModInfo is the legacy/versioned Forge mcmod.info JSON.
	FormatMCModInfo
	// FormatFabric is the Fabric fabric.mod.json descriptor.
	FormatFabric
	// FormatForge is forgeversion.properties, shipped by Forge itself.
	FormatForge
	// FormatLitemod is the LiteLoader litemod.json descriptor.
	FormatLitemod
)

// Filename returns the well-known entry name for the format.
// Names are exact and case-sensitive.
func (f MetadataFormat) Filename() string {
	switch f {
	case FormatMCModInfo:
		return "mcmod.info"
	case FormatFabric:
		return "fabric.mod.json"
	case FormatForge:
		return "forgeversion.properties"
	case FormatLitemod:
		return "litemod.json"
	default:
		return ""
	}
}

// String returns a short name for the format.
func (f MetadataFormat) String() string {
	switch f {
	case FormatMCModInfo:
		return "mcmod"
	case FormatFabric:
		return "fabric"
	case FormatForge:
		return "forge"
	case FormatLitemod:
		return "litemod"
	default:
		return "none"
	}
}
