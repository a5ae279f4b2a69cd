// Package export snapshots known modules to local markdown files for
// offline reading. The viewer itself never caches; an export is an explicit,
// user-initiated copy with its own manifest.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/devlog-hub/internal/content"
	"github.com/ziadkadry99/devlog-hub/internal/modules"
)

// Entry status values.
const (
	StatusOK          = "ok"
	StatusPlaceholder = "placeholder"
	StatusFailed      = "failed"
)

// Manifest records one export run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Entry is the outcome for a single module.
type Entry struct {
	ModuleID string `json:"module_id"`
	Status   string `json:"status"`
	File     string `json:"file,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Options controls an export run.
type Options struct {
	Dir     string // output directory, created if absent
	Pattern string // doublestar glob over module identifiers; empty = all
}

// Run exports every known module matching the pattern into opts.Dir and
// writes a manifest.json alongside. Hard fetch failures are recorded per
// module and do not abort the run.
func Run(ctx context.Context, fetcher *content.Fetcher, opts Options, reporter Reporter) (*Manifest, error) {
	mods, err := modules.Match(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("matching pattern %q: %w", opts.Pattern, err)
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("no known modules match pattern %q", opts.Pattern)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	if reporter == nil {
		reporter = silentReporter{}
	}

	manifest := &Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now(),
	}

	reporter.Start(len(mods))
	for i, m := range mods {
		state := fetcher.Load(ctx, m)

		entry := Entry{ModuleID: m.ID}
		switch {
		case !state.Ready():
			entry.Status = StatusFailed
			entry.Error = state.Err
		default:
			name := m.ID + ".md"
			if err := os.WriteFile(filepath.Join(opts.Dir, name), []byte(state.Bundle.Markdown), 0o644); err != nil {
				entry.Status = StatusFailed
				entry.Error = err.Error()
				break
			}
			entry.File = name
			if state.Bundle.Markdown == content.Placeholder {
				entry.Status = StatusPlaceholder
			} else {
				entry.Status = StatusOK
			}
		}
		manifest.Entries = append(manifest.Entries, entry)
		reporter.Update(i+1, m.ID)
	}
	reporter.Finish()

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.Dir, "manifest.json"), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return manifest, nil
}
