package mcmod

import (
	"slices"
	"testing"

	"github.com/simonhull/modmeta/internal/registry"
	"github.com/simonhull/modmeta/internal/types"
)

const legacyArray = `[
{
  "modid": "examplemod",
  "name": "Iron Chests",
  "description": "Chests, but iron.",
  "version": "1.7.10-6.0.62",
  "mcversion": "1.7.10",
  "url": "  github.com/progwml6/ironchest  ",
  "updateUrl": "https://example.com/update.json",
  "authorList": ["cpw", "progwml6"],
  "credits": "Thanks to everyone",
  "logoFile": "",
  "screenshots": [],
  "dependencies": []
}
]`

func TestDecode_LegacyArray(t *testing.T) {
	d, warnings := Decode([]byte(legacyArray))
	if d == nil {
		t.Fatalf("Decode() = nil, warnings = %v", warnings)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := &types.ModDescriptor{
		ModID:       "examplemod",
		Name:        "Iron Chests",
		Version:     "1.7.10-6.0.62",
		HomeURL:     "http://github.com/progwml6/ironchest",
		UpdateURL:   "https://example.com/update.json",
		Description: "Chests, but iron.",
		Credits:     "Thanks to everyone",
		Authors:     []string{"cpw", "progwml6"},
	}
	if !d.Equal(want) {
		t.Errorf("Decode() = %+v, want %+v", d, want)
	}
}

func TestDecode_VersionedObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"modListVersion/modList", `{"modListVersion": 2, "modList": [{"modid": "buildcraft"}]}`},
		{"modinfoversion/modlist", `{"modinfoversion": 2, "modlist": [{"modid": "buildcraft"}]}`},
		{"mixed keys", `{"modinfoversion": 2, "modList": [{"modid": "buildcraft"}]}`},
		{"fractional version truncates", `{"modListVersion": 2.9, "modList": [{"modid": "buildcraft"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, warnings := Decode([]byte(tt.input))
			if d == nil {
				t.Fatalf("Decode() = nil, warnings = %v", warnings)
			}
			if d.ModID != "buildcraft" {
				t.Errorf("ModID = %q, want %q", d.ModID, "buildcraft")
			}
		})
	}
}

func TestDecode_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"version 1", `{"modListVersion": 1, "modList": [{"modid": "x"}]}`},
		{"version 3", `{"modinfoversion": 3, "modlist": [{"modid": "x"}]}`},
		{"missing version", `{"modList": [{"modid": "x"}]}`},
		{"string version", `{"modListVersion": "2", "modList": [{"modid": "x"}]}`},
		{"modinfoversion shadows modListVersion", `{"modinfoversion": null, "modListVersion": 2, "modList": [{"modid": "x"}]}`},
		{"list not array", `{"modListVersion": 2, "modList": {"modid": "x"}}`},
		{"missing list", `{"modListVersion": 2}`},
		{"first entry not object", `["x", {"modid": "y"}]`},
		{"empty array", `[]`},
		{"malformed json", `[{"modid": "x"`},
		{"scalar", `"mcmod"`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, warnings := Decode([]byte(tt.input))
			if d != nil {
				t.Errorf("Decode() = %+v, want nil", d)
			}
			if len(warnings) == 0 {
				t.Error("expected a diagnostic warning")
			}
			for _, w := range warnings {
				if w.Format != types.FormatMCModInfo || w.Stage != "decode" {
					t.Errorf("warning = %+v", w)
				}
			}
		})
	}
}

func TestDecode_OnlyFirstEntry(t *testing.T) {
	d, _ := Decode([]byte(`[{"modid": "first"}, {"modid": "second"}]`))
	if d == nil || d.ModID != "first" {
		t.Errorf("Decode() = %+v, want first entry", d)
	}
}

func TestDecode_PlaceholderName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Example Mod", ""},
		{"Example Mod 2", "Example Mod 2"},
		{"example mod", "example mod"},
		{"Thaumcraft", "Thaumcraft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := Decode([]byte(`[{"modid": "m", "name": "` + tt.name + `"}]`))
			if d == nil {
				t.Fatal("Decode() = nil")
			}
			if d.Name != tt.want {
				t.Errorf("Name = %q, want %q", d.Name, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"ftp://files.example.com", "ftp://files.example.com"},
		{"", ""},
		{"   ", ""},
		{"  example.com/mod ", "http://example.com/mod"},
		{"HTTPS://example.com", "http://HTTPS://example.com"},
	}

	for _, tt := range tests {
		if got := normalizeURL(tt.in); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode_Authors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"authorList", `[{"authorList": ["a", "b", "a"]}]`, []string{"a", "b", "a"}},
		{"authors fallback", `[{"authors": ["c"]}]`, []string{"c"}},
		{"empty authorList falls back", `[{"authorList": [], "authors": ["d"]}]`, []string{"d"}},
		{"authorList wins", `[{"authorList": ["e"], "authors": ["f"]}]`, []string{"e"}},
		{"non-string entries", `[{"authorList": ["g", 7, {"n": 1}]}]`, []string{"g", "7", ""}},
		{"none", `[{"modid": "x"}]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := Decode([]byte(tt.input))
			if d == nil {
				t.Fatal("Decode() = nil")
			}
			if !slices.Equal(d.Authors, tt.want) {
				t.Errorf("Authors = %q, want %q", d.Authors, tt.want)
			}
		})
	}
}

func TestDecode_WrongTypesReadAsEmpty(t *testing.T) {
	d, _ := Decode([]byte(`[{"modid": 5, "name": true, "version": 1.2, "url": ["x"]}]`))
	if d == nil {
		t.Fatal("Decode() = nil")
	}
	if d.ModID != "" || d.Name != "" || d.Version != "" || d.HomeURL != "" {
		t.Errorf("Decode() = %+v, want empty fields", d)
	}
}

func TestDecode_Lenient(t *testing.T) {
	input := `[
	// hand-edited
	{"modid": "lenient", "authorList": ["x",],},
]`
	d, _ := Decode([]byte(input))
	if d == nil || d.ModID != "lenient" {
		t.Errorf("Decode() = %+v", d)
	}
}

func TestDecode_ByteOrderMark(t *testing.T) {
	data := append([]byte("\xEF\xBB\xBF"), `[{"modid": "jei", "name": "JEI"}]`...)

	d, warnings := Decode(data)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if d == nil || d.ModID != "jei" || d.Name != "JEI" {
		t.Errorf("Decode() = %+v", d)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	first, _ := Decode([]byte(legacyArray))
	second, _ := Decode([]byte(legacyArray))
	if !first.Equal(second) {
		t.Errorf("decodes differ: %+v vs %+v", first, second)
	}
}

func TestRegistered(t *testing.T) {
	dec := registry.Get(types.FormatMCModInfo)
	if dec == nil {
		t.Fatal("mcmod decoder not registered")
	}
	d, _ := dec.Decode([]byte(`[{"modid": "reg"}]`))
	if d == nil || d.ModID != "reg" {
		t.Errorf("Decode() = %+v", d)
	}
}
