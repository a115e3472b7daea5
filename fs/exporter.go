// Package fs exports conversion results as markdown files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pagemark/pagemark"
)

// CombinedSeparator joins documents in a combined export.
const CombinedSeparator = "\n\n---\n\n"

// Exporter writes conversion results as markdown files under a base
// directory. File names derive from the result title via SafeFilename, so
// they stay portable across filesystems.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// WriteResult writes one result to <baseDir>/<safe-title>.md and returns the
// full path of the written file.
func (e *Exporter) WriteResult(result *pagemark.ConversionResult) (string, error) {
	if result == nil || result.Markdown == "" {
		return "", pagemark.Errorf(pagemark.EINVALID, "nothing to export")
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(e.baseDir, pagemark.SafeFilename(result.Title)+".md")
	if err := os.WriteFile(path, []byte(result.Markdown), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCombined joins every result into a single document separated by
// horizontal rules and writes it to <baseDir>/<name>. Results keep their
// given order.
func (e *Exporter) WriteCombined(name string, results []*pagemark.ConversionResult) (string, error) {
	if len(results) == 0 {
		return "", pagemark.Errorf(pagemark.EINVALID, "nothing to export")
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return "", err
	}

	docs := make([]string, 0, len(results))
	for _, r := range results {
		if r == nil || r.Markdown == "" {
			continue
		}
		docs = append(docs, strings.TrimRight(r.Markdown, "\n"))
	}
	if len(docs) == 0 {
		return "", pagemark.Errorf(pagemark.EINVALID, "nothing to export")
	}

	path := filepath.Join(e.baseDir, name)
	content := strings.Join(docs, CombinedSeparator) + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
