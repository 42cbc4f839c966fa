// Package types provides core data structures for mod metadata.
//
// This package defines the ModDescriptor, ArtifactKind, and MetadataFormat
// types shared by the locator, the per-format decoders, and the public API.
package types

import "slices"

// ModDescriptor is the normalized metadata record produced for one artifact.
//
// Every field defaults to the empty value. Decoders never fail because an
// optional field is missing; absent and blank render identically.
type ModDescriptor struct {
	ModID       string
	Name        string
	Version     string // Opaque, not validated
	MCVersion   string // Target game version (litemod only)
	HomeURL     string
	UpdateURL   string
	Description string
	Credits     string // Legacy mcmod.info only

	// Author names in source order. Duplicates are kept.
	Authors []string
}

// DisplayName returns Name, or ModID when Name is empty.
func (d *ModDescriptor) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ModID
}

// Equal reports whether two descriptors hold identical field values.
func (d *ModDescriptor) Equal(other *ModDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.ModID == other.ModID &&
		d.Name == other.Name &&
		d.Version == other.Version &&
		d.MCVersion == other.MCVersion &&
		d.HomeURL == other.HomeURL &&
		d.UpdateURL == other.UpdateURL &&
		d.Description == other.Description &&
		d.Credits == other.Credits &&
		slices.Equal(d.Authors, other.Authors)
}
