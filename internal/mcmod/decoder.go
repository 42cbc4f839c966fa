// Package mcmod decodes Forge mcmod.info files.
//
// Two historical shapes exist. The oldest is a bare JSON array of mod
// entries. The later one wraps the array in an object that also carries a
// list version, which must be 2:
//
//	{"modListVersion": 2, "modList": [{"modid": "...", ...}]}
//
// Only the first mod entry is read.
package mcmod

import (
	"fmt"
	"strings"

	"github.com/simonhull/modmeta/internal/jsonval"
	"github.com/simonhull/modmeta/internal/registry"
	"github.com/simonhull/modmeta/internal/types"
)

// placeholderName is the name shipped in the Forge example mod template.
const placeholderName = "Example Mod"

// supportedListVersion is the only wrapped-object version understood.
const supportedListVersion = 2

var urlSchemes = []string{"http://", "https://", "ftp://"}

// decoder implements registry.Decoder for mcmod.info.
type decoder struct{}

// Decode parses mcmod.info content.
func (decoder) Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	return Decode(data)
}

// Decode parses mcmod.info content. It returns nil when the content is not
// valid JSON, uses an unsupported list version, or has no object as its
// first mod entry.
func Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	root, err := jsonval.Load(data)
	if err != nil {
		return nil, []types.Warning{warn(err.Error())}
	}

	switch v := root.(type) {
	case []any:
		return fromList(v)
	case map[string]any:
		version, ok := jsonval.Lookup(v, "modinfoversion")
		if !ok {
			version, _ = jsonval.Lookup(v, "modListVersion")
		}
		// Non-numeric versions read as 0, fractional ones truncate.
		f, _ := jsonval.Float(version)
		if n := int(f); n != supportedListVersion {
			return nil, []types.Warning{warn(fmt.Sprintf("unsupported mod list version %d", n))}
		}

		list, ok := jsonval.Lookup(v, "modlist")
		if !ok {
			list, _ = jsonval.Lookup(v, "modList")
		}
		arr, ok := list.([]any)
		if !ok {
			return nil, []types.Warning{warn("mod list is not an array")}
		}
		return fromList(arr)
	default:
		return nil, []types.Warning{warn("top-level value is neither an array nor an object")}
	}
}

// fromList reads the first entry of a mod list.
func fromList(list []any) (*types.ModDescriptor, []types.Warning) {
	if len(list) == 0 {
		return nil, []types.Warning{warn("mod list is empty")}
	}
	entry, ok := jsonval.Object(list[0])
	if !ok {
		return nil, []types.Warning{warn("first mod list entry is not an object")}
	}

	d := &types.ModDescriptor{
		ModID:       jsonval.String(entry, "modid"),
		Version:     jsonval.String(entry, "version"),
		UpdateURL:   jsonval.String(entry, "updateUrl"),
		HomeURL:     normalizeURL(jsonval.String(entry, "url")),
		Description: jsonval.String(entry, "description"),
		Credits:     jsonval.String(entry, "credits"),
	}

	if name := jsonval.String(entry, "name"); name != placeholderName {
		d.Name = name
	}

	authors := jsonval.Array(entry["authorList"])
	if len(authors) == 0 {
		authors = jsonval.Array(entry["authors"])
	}
	for _, a := range authors {
		d.Authors = append(d.Authors, jsonval.Text(a))
	}

	return d, nil
}

// normalizeURL trims the URL and gives it an explicit scheme.
func normalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(u, scheme) {
			return u
		}
	}
	return "http://" + u
}

func warn(reason string) types.Warning {
	return types.DecodeWarning(types.FormatMCModInfo, reason)
}

// init registers the mcmod.info decoder
func init() {
	registry.Register(types.FormatMCModInfo, decoder{})
}
