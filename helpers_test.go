package modmeta_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// zipEntry is one file inside a test archive.
type zipEntry struct {
	name string
	body string
}

// createArchive writes a zip archive with entries in the given order and
// returns its path.
func createArchive(t testing.TB, dir, name string, entries ...zipEntry) string {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(e.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// createModFolder writes a loose mod folder, optionally with mcmod.info.
func createModFolder(t testing.TB, dir, name string, mcmodInfo *string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(path, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if mcmodInfo != nil {
		if err := os.WriteFile(filepath.Join(path, "mcmod.info"), []byte(*mcmodInfo), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

const (
	jeiInfo = `{
  "modListVersion": 2,
  "modList": [{
    "modid": "jei",
    "name": "Just Enough Items",
    "version": "4.16.1.302",
    "url": "minecraft.curseforge.com/projects/jei",
    "authorList": ["mezz"],
    "description": "JEI is an item and recipe viewing mod."
  }]
}`

	sodiumJSON = `{
  "schemaVersion": 1,
  "id": "sodium",
  "version": "0.5.8",
  "name": "Sodium",
  "authors": [{"name": "JellySquid"}],
  "contact": {"homepage": "https://modrinth.com/mod/sodium"}
}`

	forgeProps = "forge.major.number=14\nforge.minor.number=23\nforge.revision.number=5\nforge.build.number=2860\n"

	liteJSON = `{"name": "MiniMap", "mcversion": "1.12.2", "revision": 17, "author": "Someone"}`
)
