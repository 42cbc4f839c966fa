// Package fabric decodes fabric.mod.json descriptors.
//
// Fields beyond id, version, name and description are gated on
// schemaVersion: version 0 files never yield authors or a homepage.
package fabric

import (
	"github.com/simonhull/modmeta/internal/jsonval"
	"github.com/simonhull/modmeta/internal/registry"
	"github.com/simonhull/modmeta/internal/types"
)

// decoder implements registry.Decoder for fabric.mod.json.
type decoder struct{}

// Decode parses fabric.mod.json content.
func (decoder) Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	return Decode(data)
}

// Decode parses fabric.mod.json content.
//
// It always returns a descriptor. Content that is not a JSON object decodes
// to empty fields, with a warning.
func Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	var warnings []types.Warning

	root, err := jsonval.Load(data)
	if err != nil {
		warnings = append(warnings, warn(err.Error()))
	}
	obj, ok := jsonval.Object(root)
	if !ok && err == nil {
		warnings = append(warnings, warn("top-level value is not an object"))
	}

	schemaVersion := 0
	if v, present := jsonval.Lookup(obj, "schemaVersion"); present {
		schemaVersion, _ = jsonval.Int(v)
	}

	d := &types.ModDescriptor{
		ModID:       jsonval.String(obj, "id"),
		Version:     jsonval.String(obj, "version"),
		Description: jsonval.String(obj, "description"),
	}
	if _, present := jsonval.Lookup(obj, "name"); present {
		d.Name = jsonval.String(obj, "name")
	} else {
		d.Name = d.ModID
	}

	if schemaVersion >= 1 {
		for _, a := range jsonval.Array(obj["authors"]) {
			d.Authors = append(d.Authors, personName(a))
		}

		if v, present := jsonval.Lookup(obj, "contact"); present {
			contact, _ := jsonval.Object(v)
			if _, present := jsonval.Lookup(contact, "homepage"); present {
				d.HomeURL = jsonval.String(contact, "homepage")
			}
		}
	}

	return d, warnings
}

// personName reads a person entry, which is either a bare name or an
// object with a "name" field.
func personName(v any) string {
	if obj, ok := jsonval.Object(v); ok {
		return jsonval.String(obj, "name")
	}
	return jsonval.Text(v)
}

func warn(reason string) types.Warning {
	return types.DecodeWarning(types.FormatFabric, reason)
}

// init registers the fabric.mod.json decoder
func init() {
	registry.Register(types.FormatFabric, decoder{})
}
