// Package web implements the server-rendered showcase pages and a small JSON API.
//
// # Routes
//
//	GET  /              → Listing page: top participants and, when present, all other participants
//	GET  /admin         → Admin form
//	POST /admin         → Add a website from the form; redirects to / on success
//	GET  /api/websites  → Listing as JSON {"top": [...], "others": [...]}
//	POST /api/websites  → Add a website from a JSON draft; responds 201 with the created entry
//	GET  /api/websites/{id} → A single website as JSON, 404 when no entry has that ID
//	GET  /healthz       → Liveness probe
//
// # State Management
//
// Every handler reads and writes through one mounted [showcase.Showcase]; the web app holds no state of its own.
// The listing and admin pages are separate routes, so the Listing/Admin toggle is a header link rather than a flag.
//
// # Templates
//
//   - base.html: Layout with header, admin toggle link, and footer
//   - listing.html: Sections rendered from [formatter.Sections]
//   - admin.html: The add form, re-rendered with the submitted values on validation errors
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/showcase/internal/formatter"
	"github.com/desertthunder/showcase/internal/models"
	"github.com/desertthunder/showcase/internal/server"
	"github.com/desertthunder/showcase/internal/shared"
	"github.com/desertthunder/showcase/internal/showcase"
)

//go:embed templates/*.html
var templateFiles embed.FS

// maxBodyBytes caps request bodies for the add endpoints.
const maxBodyBytes = 64 << 10

// Options holds presentation strings for the pages.
type Options struct {
	Title  string
	Footer string
}

// App serves the showcase over HTTP.
type App struct {
	showcase *showcase.Showcase
	opts     Options
	logger   *log.Logger
	listing  *template.Template
	admin    *template.Template
}

type pageData struct {
	Title    string
	Footer   string
	Admin    bool
	Sections []formatter.Section
	Draft    models.Draft
	Error    string
}

// NewApp parses the embedded templates and creates an App around a mounted showcase.
func NewApp(sc *showcase.Showcase, opts Options, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if opts.Title == "" {
		opts.Title = "Participant Showcase"
	}

	funcs := template.FuncMap{"badge": formatter.Badge}

	listing, err := template.New("listing").Funcs(funcs).ParseFS(templateFiles, "templates/base.html", "templates/listing.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing templates: %w", err)
	}

	admin, err := template.New("admin").Funcs(funcs).ParseFS(templateFiles, "templates/base.html", "templates/admin.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin templates: %w", err)
	}

	return &App{
		showcase: sc,
		opts:     opts,
		logger:   shared.WithLogger(logger, "component", "web"),
		listing:  listing,
		admin:    admin,
	}, nil
}

// Register mounts every page and API route on r.
func (a *App) Register(r server.Router) {
	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(a.Listing))
	r.Handle(http.MethodGet, "/admin", http.HandlerFunc(a.AdminForm))
	r.Handle(http.MethodPost, "/admin", http.HandlerFunc(a.AdminSubmit))
	r.Handle(http.MethodGet, "/healthz", http.HandlerFunc(a.Health))
	r.Handler(&APIHandler{app: a})
}

// Listing renders the ranked sections.
func (a *App) Listing(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, a.listing, pageData{
		Sections: formatter.Sections(a.showcase.Websites()),
	})
}

// AdminForm renders an empty add form.
func (a *App) AdminForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, a.admin, pageData{Admin: true})
}

// AdminSubmit adds the submitted website and redirects to the listing, or re-renders the form on invalid input.
func (a *App) AdminSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	draft := models.Draft{
		Name:        r.PostForm.Get("name"),
		URL:         r.PostForm.Get("url"),
		Description: r.PostForm.Get("description"),
		Author:      r.PostForm.Get("author"),
		PreviewURL:  r.PostForm.Get("preview_url"),
	}

	website, err := a.showcase.Add(r.Context(), draft)
	if errors.Is(err, shared.ErrInvalidInput) {
		a.render(w, http.StatusUnprocessableEntity, a.admin, pageData{Admin: true, Draft: draft, Error: err.Error()})
		return
	}
	if err != nil {
		a.logger.Error("failed to add website", "error", err, "request_id", server.RequestIDFrom(r.Context()))
		http.Error(w, "Failed to save website", http.StatusInternalServerError)
		return
	}

	a.logger.Info("website added via admin form", "id", website.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// render executes the "base" layout into a buffer so template errors never produce a partial page.
func (a *App) render(w http.ResponseWriter, status int, tmpl *template.Template, data pageData) {
	data.Title = a.opts.Title
	data.Footer = a.opts.Footer

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		a.logger.Error("failed to render template", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.Copy(w, &buf)
}

// APIHandler serves the JSON API under /api/websites.
type APIHandler struct {
	app *App
}

var _ server.Handler = (*APIHandler)(nil)

// Routes returns the HTTP routes this handler serves.
func (h *APIHandler) Routes() []string {
	return []string{"GET /api/websites", "POST /api/websites", "GET /api/websites/{id}"}
}

// ServeHTTP dispatches on method.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if r.PathValue("id") != "" {
			h.show(w, r)
			return
		}
		writeJSON(w, http.StatusOK, formatter.NewListing(h.app.showcase.Websites()))
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *APIHandler) show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid website id %q", r.PathValue("id")))
		return
	}

	website, ok := h.app.showcase.Website(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("website %d not found", id))
		return
	}
	writeJSON(w, http.StatusOK, website)
}

func (h *APIHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	website, err := h.app.showcase.Add(r.Context(), draft)
	if errors.Is(err, shared.ErrInvalidInput) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if errors.Is(err, shared.ErrServiceUnavailable) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		h.app.logger.Error("failed to add website", "error", err, "request_id", server.RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to save website")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/websites/%d", website.ID))
	writeJSON(w, http.StatusCreated, website)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
