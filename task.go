package modmeta

import (
	"errors"
	"fmt"

	"github.com/simonhull/modmeta/internal/locate"
	"github.com/simonhull/modmeta/internal/registry"

	// Register metadata decoders.
	_ "github.com/simonhull/modmeta/internal/fabric"
	_ "github.com/simonhull/modmeta/internal/forge"
	_ "github.com/simonhull/modmeta/internal/litemod"
	_ "github.com/simonhull/modmeta/internal/mcmod"
)

// Token is an opaque correlation value chosen by the caller. It is handed
// back unchanged in the Result of the task it was given to.
type Token int64

// Result is the outcome of parsing one artifact.
type Result struct {
	// Correlation token the task was created with
	Token Token

	// Artifact classification and path, as supplied
	Kind ArtifactKind
	Path string

	// Metadata entry that matched (FormatNone if none did). A matched entry
	// may still produce no descriptor when its content is malformed.
	Format MetadataFormat

	// Parsed descriptor, nil when no usable metadata was found.
	// Owned by the caller.
	Descriptor *ModDescriptor

	// Diagnostics about malformed metadata (never fatal)
	Warnings []Warning
}

// Found reports whether a descriptor was produced.
func (r Result) Found() bool {
	return r.Descriptor != nil
}

// Task parses the metadata of one artifact.
//
// A Task touches only its own artifact and result, so distinct tasks can
// run concurrently without coordination. Once started a task runs to
// completion; there is no cancellation.
type Task struct {
	token   Token
	kind    ArtifactKind
	path    string
	options *parseOptions
}

// NewTask creates a task for the artifact at path. kind selects how the
// artifact is searched; KindUnknown produces an empty result.
func NewTask(token Token, kind ArtifactKind, path string, opts ...Option) *Task {
	return &Task{
		token:   token,
		kind:    kind,
		path:    path,
		options: applyOptions(opts),
	}
}

// Token returns the task's correlation token.
func (t *Task) Token() Token {
	return t.token
}

// Run parses the artifact and returns the result.
//
// Run never fails: unreadable archives, missing metadata, and malformed
// content all produce a Result without a descriptor. Every file handle
// the task opened is closed before Run returns.
func (t *Task) Run() (res Result) {
	res = Result{Token: t.token, Kind: t.kind, Path: t.path}
	logger := t.options.logger.With(
		"token", int64(t.token),
		"path", t.path,
		"kind", t.kind.String(),
	)

	defer func() {
		if r := recover(); r != nil {
			res.Descriptor = nil
			res.Warnings = append(res.Warnings, Warning{
				Stage:   "decode",
				Format:  res.Format,
				Message: fmt.Sprintf("decoder panic: %v", r),
			})
			logger.Error("metadata decoder panicked", "panic", r)
		}
		if t.options.ignoreWarnings {
			res.Warnings = nil
		}
	}()

	limit := t.options.maxEntrySize

	var (
		match locate.Match
		err   error
	)
	switch t.kind {
	case KindArchive:
		match, err = locate.Archive(t.path, limit)
	case KindDirectory:
		match, err = locate.Directory(t.path, limit)
	case KindLitemod:
		match, err = locate.Litemod(t.path, limit)
	default:
		logger.Debug("unsupported artifact kind, nothing to parse")
		return res
	}
	if err != nil {
		// An entry over the size limit is worth telling the user about.
		var tooLarge *EntryTooLargeError
		if errors.As(err, &tooLarge) {
			res.Warnings = append(res.Warnings, Warning{Stage: "locate", Message: tooLarge.Error()})
			logger.Warn("metadata entry too large", "entry", tooLarge.Entry, "limit", tooLarge.Limit)
			return res
		}
		logger.Debug("no metadata located", "error", err)
		return res
	}

	res.Format = match.Format
	logger = logger.With("format", match.Format.String())

	decoder := registry.Get(match.Format)
	if decoder == nil {
		res.Warnings = append(res.Warnings, Warning{
			Stage:   "decode",
			Format:  match.Format,
			Message: "no decoder registered",
		})
		logger.Warn("no decoder registered for format")
		return res
	}

	desc, warnings := decoder.Decode(match.Data)
	for _, w := range warnings {
		logger.Warn("malformed metadata", "stage", w.Stage, "message", w.Message)
	}

	res.Descriptor = desc
	res.Warnings = append(res.Warnings, warnings...)
	return res
}

// Start runs the task on a new goroutine.
//
// The returned channel receives exactly one Result, carrying the task's
// token, and is then closed. The result is sent only after all of the
// task's file handles are released.
//
// Example:
//
//	done := modmeta.NewTask(7, modmeta.KindArchive, "jei.jar").Start()
//	res := <-done
//	fmt.Println(res.Token, res.Found())
func (t *Task) Start() <-chan Result {
	done := make(chan Result, 1)
	go func() {
		defer close(done)
		done <- t.Run()
	}()
	return done
}
