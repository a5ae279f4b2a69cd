package viewer

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/devlog-hub/internal/content"
	"github.com/ziadkadry99/devlog-hub/internal/modules"
	"github.com/ziadkadry99/devlog-hub/internal/theme"
)

// modulePageData is passed to the module page template.
type modulePageData struct {
	Theme        string
	Title        string
	Content      template.HTML
	CompanionURL string
	SourceURL    string
}

// errorPageData is passed to the error page template.
type errorPageData struct {
	Theme   string
	Message string
}

// indexPageData is passed to the index template.
type indexPageData struct {
	Theme   string
	Modules []modules.Module
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexPageData{
		Theme:   theme.Attribute(s.theme.Dark(r)),
		Modules: modules.All(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// handleModule resolves the identifier, fetches the document, and renders
// either the ready page or the error page. The fetch is request-scoped, so a
// navigation away simply cancels it with the request context; a bundle is
// only rendered if it is tagged with the identifier this request asked for.
func (s *Server) handleModule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mod := modules.Resolve(id)
	dark := s.theme.Dark(r)

	state := s.fetcher.Load(r.Context(), mod)
	if !state.Ready() || state.Bundle.ModuleID != mod.ID {
		s.renderError(w, state.Err, dark)
		return
	}

	body, err := s.renderer.Render(state.Bundle.Markdown)
	if err != nil {
		s.renderError(w, content.ErrorMessage, dark)
		return
	}

	data := modulePageData{
		Theme:        theme.Attribute(dark),
		Title:        mod.DisplayName,
		Content:      body,
		CompanionURL: state.Bundle.CompanionURL,
		SourceURL:    state.Bundle.SourceURL,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.moduleTmpl.Execute(w, data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (s *Server) renderError(w http.ResponseWriter, message string, dark bool) {
	if message == "" {
		message = content.ErrorMessage
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_ = s.errorTmpl.Execute(w, errorPageData{
		Theme:   theme.Attribute(dark),
		Message: message,
	})
}

// handleThemeToggle flips the persisted preference and sends the user back
// where they came from.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	s.theme.Write(w, !s.theme.Dark(r))

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(cssContent))
}

func (s *Server) handleListModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modules.All())
}

// handleGetModule serves the raw bundle for programmatic consumers. The
// soft-failure semantics match the HTML view: a missing remote document is
// still a 200 with the placeholder payload.
func (s *Server) handleGetModule(w http.ResponseWriter, r *http.Request) {
	mod := modules.Resolve(chi.URLParam(r, "id"))

	state := s.fetcher.Load(r.Context(), mod)
	if !state.Ready() {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": state.Err})
		return
	}
	writeJSON(w, http.StatusOK, state.Bundle)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
