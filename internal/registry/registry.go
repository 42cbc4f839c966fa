// Package registry manages format-specific metadata decoders.
package registry

import (
	"sync"

	"github.com/simonhull/modmeta/internal/types"
)

// Decoder is the interface all metadata decoders implement.
type Decoder interface {
	// Decode turns raw metadata bytes into a descriptor.
	// A nil descriptor means the content carries no usable metadata.
	// Warnings describe malformed content; they are never fatal.
	Decode(data []byte) (*types.ModDescriptor, []types.Warning)
}

var (
	mu       sync.RWMutex
	decoders = make(map[types.MetadataFormat]Decoder)
)

// Register registers a decoder for a format.
// This is called by decoder packages during initialization (init functions).
func Register(format types.MetadataFormat, decoder Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[format] = decoder
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.MetadataFormat) Decoder {
	mu.RLock()
	defer mu.RUnlock()
	return decoders[format]
}
