package content

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ziadkadry99/devlog-hub/internal/modules"
)

// Source describes where module documents live. RawBase serves file contents
// directly; ForgeBase is the browsable host used for the companion PDF and
// the source-tree link.
type Source struct {
	RawBase   string
	ForgeBase string
	Owner     string
	Repo      string
	Prefix    string
}

// documentName is the file stem of a module's document on its branch,
// e.g. "DEV LOGS - SQL" for locator "SQL".
func (s Source) documentName(locator string) string {
	return s.Prefix + locator
}

// DocumentURL is the raw markdown address for a locator.
func (s Source) DocumentURL(locator string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s.md", s.RawBase, s.Owner, s.Repo, locator, s.documentName(locator))
}

// CompanionURL is the PDF counterpart address. It is only ever linked,
// never fetched here.
func (s Source) CompanionURL(locator string) string {
	return fmt.Sprintf("%s/%s/%s/raw/%s/%s.pdf", s.ForgeBase, s.Owner, s.Repo, locator, s.documentName(locator))
}

// TreeURL is the browsable address of the module's branch.
func (s Source) TreeURL(locator string) string {
	return fmt.Sprintf("%s/%s/%s/tree/%s", s.ForgeBase, s.Owner, s.Repo, locator)
}

// Fetcher retrieves module documents from a configured source.
type Fetcher struct {
	source Source
	client *http.Client
}

// NewFetcher creates a Fetcher with a bounded-timeout HTTP client.
func NewFetcher(source Source) *Fetcher {
	return &Fetcher{
		source: source,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Source returns the fetcher's source configuration.
func (f *Fetcher) Source() Source { return f.source }

// Load fetches the document for one resolved module. The fetch is a single
// attempt with no retry: a non-success status degrades the payload to the
// placeholder and the bundle is still ready; only a transport failure (or
// context cancellation) produces an error state. The bundle is tagged with
// the module identifier it was loaded for.
func (f *Fetcher) Load(ctx context.Context, m modules.Module) State {
	docURL := f.source.DocumentURL(m.Locator)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		log.Printf("content: building request for %s: %v", docURL, err)
		return State{Err: ErrorMessage}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("content: fetching %s: %v", docURL, err)
		return State{Err: ErrorMessage}
	}
	defer resp.Body.Close()

	markdown := Placeholder
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("content: reading %s: %v", docURL, err)
			return State{Err: ErrorMessage}
		}
		markdown = string(body)
	} else {
		log.Printf("content: %s returned status %d, serving placeholder", docURL, resp.StatusCode)
	}

	return State{Bundle: Bundle{
		ModuleID:     m.ID,
		DisplayName:  m.DisplayName,
		Markdown:     markdown,
		CompanionURL: f.source.CompanionURL(m.Locator),
		SourceURL:    f.source.TreeURL(m.Locator),
		FetchedAt:    time.Now(),
	}}
}
