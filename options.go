package modmeta

import (
	"log/slog"
	"runtime"

	"github.com/simonhull/modmeta/internal/locate"
)

// DefaultMaxEntrySize is the largest metadata entry read unless
// WithMaxEntrySize says otherwise.
const DefaultMaxEntrySize = locate.DefaultMaxEntrySize

// Option configures how artifacts are parsed.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	desc := modmeta.Parse(modmeta.KindArchive, "jei.jar",
//	    modmeta.WithLogger(slog.Default()),
//	    modmeta.WithMaxEntrySize(1<<20),
//	)
type Option func(*parseOptions)

// parseOptions holds parse configuration.
type parseOptions struct {
	logger         *slog.Logger
	maxEntrySize   int64 // Maximum metadata entry size in bytes (0 = no limit)
	ignoreWarnings bool  // Drop warnings from results
	concurrency    int   // ParseMany worker limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		logger:         slog.New(slog.DiscardHandler),
		maxEntrySize:   DefaultMaxEntrySize,
		ignoreWarnings: false,
		concurrency:    runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger used for diagnostics.
//
// Malformed metadata and entries over the size limit are logged at WARN.
// Artifacts without metadata, or whose metadata entry could not be opened,
// are logged at DEBUG only since they are an expected outcome. By default
// nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxEntrySize caps the size of a metadata entry that will be read.
//
// An entry over the limit is treated like an unreadable entry: the
// artifact yields no descriptor, and a "locate" warning names the entry.
// Default is DefaultMaxEntrySize; 0 disables the limit.
func WithMaxEntrySize(bytes int64) Option {
	return func(o *parseOptions) {
		if bytes >= 0 {
			o.maxEntrySize = bytes
		}
	}
}

// WithIgnoreWarnings drops warnings from results.
//
// Warnings are still logged.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithConcurrency limits how many artifacts ParseMany reads at once.
//
// Default is runtime.NumCPU(). Values below 1 restore the default.
func WithConcurrency(n int) Option {
	return func(o *parseOptions) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.concurrency = n
	}
}
