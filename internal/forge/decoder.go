// Package forge decodes forgeversion.properties, the version stamp shipped
// inside the Minecraft Forge loader jar. It only ever describes Forge itself.
package forge

import (
	"strings"

	"github.com/magiconair/properties"

	"github.com/simonhull/modmeta/internal/registry"
	"github.com/simonhull/modmeta/internal/types"
)

// Fixed identity of the Forge loader.
const (
	ModID   = "Forge"
	Name    = "Minecraft Forge"
	HomeURL = "http://www.minecraftforge.net/forum/"
)

// versionKeys are joined with "." to build the version string.
var versionKeys = []string{
	"forge.major.number",
	"forge.minor.number",
	"forge.revision.number",
	"forge.build.number",
}

// decoder implements registry.Decoder for forgeversion.properties.
type decoder struct{}

// Decode parses forgeversion.properties content.
func (decoder) Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	return Decode(data)
}

// Decode parses forgeversion.properties content. It always returns the
// Forge descriptor; unreadable content yields version 0.0.0.0.
func Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	d := &types.ModDescriptor{
		ModID:   ModID,
		Name:    Name,
		HomeURL: HomeURL,
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		d.Version = zeroVersion()
		return d, []types.Warning{types.DecodeWarning(types.FormatForge, err.Error())}
	}

	parts := make([]string, len(versionKeys))
	for i, key := range versionKeys {
		parts[i] = p.GetString(key, "0")
	}
	d.Version = strings.Join(parts, ".")

	return d, nil
}

func zeroVersion() string {
	return strings.TrimSuffix(strings.Repeat("0.", len(versionKeys)), ".")
}

// init registers the forgeversion.properties decoder
func init() {
	registry.Register(types.FormatForge, decoder{})
}
