package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactKind classifies how a mod artifact is packaged.
//
// The kind is supplied by the caller and selects the locator strategy.
type ArtifactKind int

const (
	// KindUnknown performs no work when parsed.
	KindUnknown ArtifactKind = iota
	// KindArchive is a zip or jar file.
	KindArchive
	// KindDirectory is a loose mod folder.
	KindDirectory
	// KindLitemod is a LiteLoader .litemod archive.
	KindLitemod
)

// String returns a human-readable name for the kind.
func (k ArtifactKind) String() string {
	switch k {
	case KindArchive:
		return "archive"
	case KindDirectory:
		return "directory"
	case KindLitemod:
		return "litemod"
	default:
		return "unknown"
	}
}

// ParseArtifactKind converts a name produced by String back into a kind.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "archive", "zip", "jar":
		return KindArchive, nil
	case "directory", "dir", "folder":
		return KindDirectory, nil
	case "litemod":
		return KindLitemod, nil
	default:
		return KindUnknown, fmt.Errorf("unknown artifact kind %q", s)
	}
}

// Extensions returns the file extensions recognized for this kind.
func (k ArtifactKind) Extensions() []string {
	switch k {
	case KindArchive:
		return []string{".zip", ".jar"}
	case KindLitemod:
		return []string{".litemod"}
	default:
		return nil
	}
}

// disabledSuffix is appended by launchers to park a mod without deleting it.
const disabledSuffix = ".disabled"

// DetectKind classifies a path on disk.
//
// Directories are KindDirectory. Regular files are classified by extension,
// ignoring a trailing ".disabled". Anything else is KindUnknown with a nil
// error; only a failed stat is reported as an error.
func DetectKind(path string) (ArtifactKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return KindUnknown, fmt.Errorf("stat artifact: %w", err)
	}
	if info.IsDir() {
		return KindDirectory, nil
	}
	if !info.Mode().IsRegular() {
		return KindUnknown, nil
	}

	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, disabledSuffix)
	ext := filepath.Ext(name)

	for _, kind := range []ArtifactKind{KindArchive, KindLitemod} {
		for _, e := range kind.Extensions() {
			if ext == e {
				return kind, nil
			}
		}
	}
	return KindUnknown, nil
}
