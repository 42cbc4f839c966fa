package types

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectKind(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"jei.jar",
		"optifine.ZIP",
		"voxelmap.litemod",
		"parked.jar.disabled",
		"readme.txt",
		"noext",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "loose"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want ArtifactKind
	}{
		{"jei.jar", KindArchive},
		{"optifine.ZIP", KindArchive},
		{"voxelmap.litemod", KindLitemod},
		{"parked.jar.disabled", KindArchive},
		{"readme.txt", KindUnknown},
		{"noext", KindUnknown},
		{"loose", KindDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectKind(filepath.Join(dir, tt.name))
			if err != nil {
				t.Fatalf("DetectKind() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectKind_Missing(t *testing.T) {
	kind, err := DetectKind(filepath.Join(t.TempDir(), "gone.jar"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if kind != KindUnknown {
		t.Errorf("kind = %v, want KindUnknown", kind)
	}
}

func TestParseArtifactKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ArtifactKind
		wantErr bool
	}{
		{"archive", KindArchive, false},
		{"JAR", KindArchive, false},
		{"directory", KindDirectory, false},
		{" folder ", KindDirectory, false},
		{"litemod", KindLitemod, false},
		{"tarball", KindUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParseArtifactKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArtifactKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseArtifactKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestArtifactKind_StringRoundTrip(t *testing.T) {
	for _, k := range []ArtifactKind{KindArchive, KindDirectory, KindLitemod} {
		got, err := ParseArtifactKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseArtifactKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}
