package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/modmeta"
	"github.com/simonhull/modmeta/internal/config"
	"github.com/simonhull/modmeta/internal/fingerprint"
)

// record is the printable form of one parse result.
type record struct {
	Path        string     `json:"path" yaml:"path"`
	Kind        string     `json:"kind" yaml:"kind"`
	Format      string     `json:"format,omitempty" yaml:"format,omitempty"`
	Fingerprint string     `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Mod         *modRecord `json:"mod,omitempty" yaml:"mod,omitempty"`
	Warnings    []string   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type modRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	MCVersion   string   `json:"mcversion,omitempty" yaml:"mcversion,omitempty"`
	HomeURL     string   `json:"url,omitempty" yaml:"url,omitempty"`
	UpdateURL   string   `json:"updateUrl,omitempty" yaml:"updateUrl,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Credits     string   `json:"credits,omitempty" yaml:"credits,omitempty"`
	Authors     []string `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// buildRecords converts results for printing. With withDigest set, archive
// artifacts get a content fingerprint; a failed digest is logged and left
// blank.
func buildRecords(results []modmeta.Result, withDigest bool, logger *slog.Logger) []record {
	records := make([]record, 0, len(results))
	for _, res := range results {
		r := record{
			Path: res.Path,
			Kind: res.Kind.String(),
		}
		if res.Format != modmeta.FormatNone {
			r.Format = res.Format.String()
		}
		if d := res.Descriptor; d != nil {
			r.Mod = &modRecord{
				ID:          d.ModID,
				Name:        d.Name,
				Version:     d.Version,
				MCVersion:   d.MCVersion,
				HomeURL:     d.HomeURL,
				UpdateURL:   d.UpdateURL,
				Description: d.Description,
				Credits:     d.Credits,
				Authors:     d.Authors,
			}
		}
		for _, w := range res.Warnings {
			r.Warnings = append(r.Warnings, w.String())
		}

		if withDigest && res.Kind != modmeta.KindDirectory {
			digest, err := fingerprint.File(res.Path)
			if err != nil {
				logger.Warn("fingerprint failed", "path", res.Path, "error", err)
			} else {
				r.Fingerprint = digest.String()
			}
		}

		records = append(records, r)
	}
	return records
}

// writeRecords prints records in the requested output format.
func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		return writeText(w, records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, records []record) error {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}

		if r.Mod == nil {
			b.WriteString(TitleStyle.Render(r.Path))
			b.WriteString(SubtitleStyle.Render("  (no metadata)"))
			b.WriteByte('\n')
		} else {
			name := r.Mod.Name
			if name == "" {
				name = r.Mod.ID
			}
			b.WriteString(TitleStyle.Render(name))
			if r.Mod.Version != "" {
				b.WriteString("  " + VersionStyle.Render(r.Mod.Version))
			}
			b.WriteByte('\n')

			field(&b, "path", r.Path)
			field(&b, "format", r.Format)
			field(&b, "id", r.Mod.ID)
			field(&b, "minecraft", r.Mod.MCVersion)
			field(&b, "authors", strings.Join(r.Mod.Authors, ", "))
			field(&b, "url", r.Mod.HomeURL)
			field(&b, "update url", r.Mod.UpdateURL)
			field(&b, "credits", r.Mod.Credits)
			field(&b, "description", r.Mod.Description)
		}
		field(&b, "blake3", r.Fingerprint)

		for _, warning := range r.Warnings {
			b.WriteString("  " + WarningStyle.Render("warning: "+warning) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// field writes one labelled line, skipping empty values.
func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", SubtitleStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
}
