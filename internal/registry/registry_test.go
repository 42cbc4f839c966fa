package registry

import (
	"testing"

	"github.com/simonhull/modmeta/internal/types"
)

// mockDecoder implements Decoder for testing.
type mockDecoder struct {
	name string
}

func (m *mockDecoder) Decode(data []byte) (*types.ModDescriptor, []types.Warning) {
	return &types.ModDescriptor{ModID: m.name}, nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.MetadataFormat(999)
	decoder := &mockDecoder{name: "test"}

	Register(format, decoder)

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	md, ok := got.(*mockDecoder)
	if !ok {
		t.Fatal("Get() returned wrong decoder type")
	}
	if md.name != "test" {
		t.Errorf("Decoder name = %q, want %q", md.name, "test")
	}
}

func TestGet_Unregistered(t *testing.T) {
	format := types.MetadataFormat(998)

	if got := Get(format); got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.MetadataFormat(997)

	Register(format, &mockDecoder{name: "first"})
	Register(format, &mockDecoder{name: "second"})

	desc, _ := Get(format).Decode(nil)
	if desc.ModID != "second" {
		t.Errorf("ModID = %q, want %q (should be overwritten)", desc.ModID, "second")
	}
}
