// Package locate finds the governing metadata entry of a mod artifact and
// reads its bytes.
//
// Each artifact kind probes a fixed list of well-known filenames in priority
// order. The first entry that exists wins; if it then cannot be read, the
// search stops there and lower-priority candidates are not tried.
package locate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/simonhull/modmeta/internal/types"
)

// ErrNoMetadata is returned when none of the candidate entries exist.
var ErrNoMetadata = errors.New("no recognized metadata entry")

// ErrEmptyEntry is returned when a loose metadata file has no content.
var ErrEmptyEntry = errors.New("metadata entry is empty")

// DefaultMaxEntrySize bounds how much of a single metadata entry is read.
// Real metadata files are a few kilobytes.
const DefaultMaxEntrySize = 8 << 20

// Match is a located metadata entry.
type Match struct {
	Format types.MetadataFormat
	Data   []byte
}

// Archive probe order. Formats are mutually exclusive per archive.
var archiveCandidates = []types.MetadataFormat{
	types.FormatMCModInfo,
	types.FormatFabric,
	types.FormatForge,
}

// Candidates returns the formats probed for kind, in priority order.
func Candidates(kind types.ArtifactKind) []types.MetadataFormat {
	switch kind {
	case types.KindArchive:
		return archiveCandidates
	case types.KindDirectory:
		return []types.MetadataFormat{types.FormatMCModInfo}
	case types.KindLitemod:
		return []types.MetadataFormat{types.FormatLitemod}
	default:
		return nil
	}
}

// Archive locates metadata in a zip or jar file.
// limit caps the entry size in bytes; 0 means no limit.
func Archive(path string, limit int64) (Match, error) {
	return openZip(path, Candidates(types.KindArchive), limit)
}

// Litemod locates litemod.json in a .litemod archive.
func Litemod(path string, limit int64) (Match, error) {
	return openZip(path, Candidates(types.KindLitemod), limit)
}

func openZip(path string, candidates []types.MetadataFormat, limit int64) (Match, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Match{}, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	return probe(&zr.Reader, path, candidates, limit)
}

// probe reads the first candidate present in zr.
func probe(zr *zip.Reader, path string, candidates []types.MetadataFormat, limit int64) (Match, error) {
	for _, format := range candidates {
		name := format.Filename()
		f := findEntry(zr, name)
		if f == nil {
			continue
		}

		data, err := readEntry(f, path, limit)
		if err != nil {
			return Match{}, fmt.Errorf("read %s: %w", name, err)
		}
		return Match{Format: format, Data: data}, nil
	}
	return Match{}, ErrNoMetadata
}

// findEntry returns the first entry named exactly name.
func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readEntry(f *zip.File, path string, limit int64) ([]byte, error) {
	if limit > 0 && f.UncompressedSize64 > uint64(limit) {
		return nil, &types.EntryTooLargeError{Path: path, Entry: f.Name, Limit: limit}
	}

	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return readLimited(rc, limit, path, f.Name)
}

// Directory locates mcmod.info at the root of a loose mod folder.
// No other format is recognized in directory form.
func Directory(path string, limit int64) (Match, error) {
	for _, format := range Candidates(types.KindDirectory) {
		name := format.Filename()
		full := filepath.Join(path, name)

		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := readFile(full, path, name, limit)
		if err != nil {
			return Match{}, err
		}
		if len(data) == 0 {
			return Match{}, ErrEmptyEntry
		}
		return Match{Format: format, Data: data}, nil
	}
	return Match{}, ErrNoMetadata
}

func readFile(full, path, name string, limit int64) ([]byte, error) {
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	data, err := readLimited(f, limit, path, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// readLimited reads r to EOF, failing once more than limit bytes arrive.
func readLimited(r io.Reader, limit int64, path, entry string) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, &types.EntryTooLargeError{Path: path, Entry: entry, Limit: limit}
	}
	return data, nil
}
