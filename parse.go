package modmeta

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Parse reads the metadata of a single artifact synchronously.
//
// Returns nil when the artifact carries no recognized metadata or the
// metadata is malformed.
//
// Example:
//
//	desc := modmeta.Parse(modmeta.KindArchive, "mods/jei.jar")
//	if desc != nil {
//		fmt.Println(desc.DisplayName(), desc.Version)
//	}
func Parse(kind ArtifactKind, path string, opts ...Option) *ModDescriptor {
	return NewTask(0, kind, path, opts...).Run().Descriptor
}

// Request describes one artifact to parse with ParseMany.
type Request struct {
	Token Token
	Kind  ArtifactKind
	Path  string
}

// ParseMany parses multiple artifacts concurrently.
//
// Artifacts are parsed in parallel using up to runtime.NumCPU() goroutines
// (see WithConcurrency). Results are returned in the same order as the
// requests.
//
// The context is checked before each task starts; a task that has started
// always runs to completion. If the context is cancelled, ParseMany returns
// the context error and no results.
//
// Example:
//
//	requests, err := modmeta.ScanDir("instance/mods")
//	if err != nil {
//		return err
//	}
//	results, err := modmeta.ParseMany(ctx, requests)
func ParseMany(ctx context.Context, requests []Request, opts ...Option) ([]Result, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]Result, len(requests))

	for i, req := range requests {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			task := &Task{token: req.Token, kind: req.Kind, path: req.Path, options: options}
			results[i] = task.Run()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScanDir lists a mods folder and builds a request for every entry whose
// kind can be detected. Entries of unknown kind and hidden files are
// skipped. Tokens are assigned in directory order starting at 0.
func ScanDir(dir string) ([]Request, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mods directory: %w", err)
	}

	var requests []Request
	for _, e := range entries {
		name := e.Name()
		// Mac nonsense and other dotfiles
		if name == "" || name[0] == '.' {
			continue
		}

		path := filepath.Join(dir, name)
		kind, err := DetectKind(path)
		if err != nil || kind == KindUnknown {
			continue
		}
		requests = append(requests, Request{
			Token: Token(len(requests)),
			Kind:  kind,
			Path:  path,
		})
	}

	return slices.Clip(requests), nil
}
