// Package litemod decodes LiteLoader litemod.json descriptors.
package litemod

import (
	"github.com/simonhull/modmeta/internal/jsonval"
	"github.com/simonhull/modmeta/internal/registry"
	"github.com/simonhull/modmeta/internal/types"
)

// decoder implements registry.Decoder for litemod.json.
type decoder struct{}

// Decode parses litemod.json content.
func (decoder) Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	return Decode(data)
}

// Decode parses litemod.json content. It always returns a descriptor;
// unparseable content decodes to empty fields with a warning.
//
// LiteLoader has no separate mod id, so name fills both ModID and Name.
// Only a single author is supported.
func Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	var warnings []types.Warning

	root, err := jsonval.Load(data)
	if err != nil {
		warnings = append(warnings, types.DecodeWarning(types.FormatLitemod, err.Error()))
	}
	obj, ok := jsonval.Object(root)
	if !ok && err == nil {
		warnings = append(warnings, types.DecodeWarning(types.FormatLitemod, "top-level value is not an object"))
	}

	d := &types.ModDescriptor{
		MCVersion:   jsonval.String(obj, "mcversion"),
		Description: jsonval.String(obj, "description"),
		HomeURL:     jsonval.String(obj, "url"),
	}

	if _, present := jsonval.Lookup(obj, "name"); present {
		d.Name = jsonval.String(obj, "name")
		d.ModID = d.Name
	}

	// revision is usually a bare build number.
	if v, present := jsonval.Lookup(obj, "version"); present {
		d.Version = jsonval.Text(v)
	} else {
		d.Version = jsonval.Text(obj["revision"])
	}

	if author := jsonval.String(obj, "author"); author != "" {
		d.Authors = []string{author}
	}

	return d, warnings
}

// init registers the litemod.json decoder
func init() {
	registry.Register(types.FormatLitemod, decoder{})
}
