package console

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/arenaworks/console/internal/console/i18n"
	"github.com/arenaworks/console/internal/console/templates"
	"github.com/arenaworks/console/internal/platform/htmx"
	"github.com/arenaworks/console/internal/platform/timeouts"
	"golang.org/x/text/message"
)

// Handler routes console requests.
type Handler struct {
	api    API
	runner *ActionRunner
}

// NewHandler builds the HTTP handler for the console server.
func NewHandler(api API) http.Handler {
	handler := &Handler{
		api:    api,
		runner: NewActionRunner(api),
	}
	return handler.routes()
}

// routes wires the HTTP routes for the console handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("internal/console/static"))))
	mux.Handle("/", http.HandlerFunc(h.handleIndex))
	mux.Handle("/sessions", http.HandlerFunc(h.handleSessionsPage))
	mux.Handle("/sessions/create", http.HandlerFunc(h.handleSessionCreate))
	mux.Handle("/sessions/", http.HandlerFunc(h.handleSessionRoutes))
	mux.Handle("/attempts/", http.HandlerFunc(h.handleAttemptRoutes))
	return mux
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer) templates.PageContext {
	return templates.PageContext{Lang: lang, Loc: loc}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/sessions", http.StatusSeeOther)
}

// handleSessionsPage renders the session list fragment or full layout.
func (h *Handler) handleSessionsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	view := templates.SessionsPageView{}
	if msg := strings.TrimSpace(r.URL.Query().Get("message")); msg != "" {
		view.Message = msg
	}

	records, err := Refresh(ctx, h.api)
	if err != nil && records == nil {
		log.Printf("refresh sessions: %v", err)
		view.Error = loc.Sprintf("error.sessions_unavailable", err.Error())
	} else if err != nil {
		log.Printf("refresh sessions: %v", err)
		view.Error = loc.Sprintf("error.partial_fetch")
	}
	for _, record := range records {
		view.Rows = append(view.Rows, buildSessionRow(record, loc))
	}

	title := loc.Sprintf("title.sessions", templates.AppName)
	htmx.RenderPage(w, r,
		templates.SessionsPage(view, loc),
		templates.SessionsFullPage(view, pageCtx),
		htmx.TitleTag(title))
}

// handleSessionRoutes dispatches detail and end-session subroutes.
func (h *Handler) handleSessionRoutes(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(strings.TrimPrefix(r.URL.Path, "/sessions/"))

	// /sessions/{id}
	if len(parts) == 1 && parts[0] != "" {
		h.handleSessionDetail(w, r, parts[0])
		return
	}
	// /sessions/{id}/end
	if len(parts) == 2 && parts[1] == "end" {
		h.handleEndSession(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

// handleAttemptRoutes dispatches attempt subroutes.
func (h *Handler) handleAttemptRoutes(w http.ResponseWriter, r *http.Request) {
	parts := splitPathParts(strings.TrimPrefix(r.URL.Path, "/attempts/"))

	// /attempts/{id}/force-score
	if len(parts) == 2 && parts[1] == "force-score" {
		h.handleForceScore(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

// handleSessionDetail renders the single-session detail content.
func (h *Handler) handleSessionDetail(w http.ResponseWriter, r *http.Request, sessionID string) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	view := templates.SessionDetailView{Session: templates.SessionRow{ID: sessionID}}
	if msg := strings.TrimSpace(r.URL.Query().Get("message")); msg != "" {
		view.Message = msg
	}

	detail, err := h.api.GetSessionDetail(ctx, sessionID)
	if err != nil {
		log.Printf("get session detail: %v", err)
		view.Error = loc.Sprintf("error.session_unavailable", err.Error())
	} else {
		message := view.Message
		view = buildSessionDetailView(detail, loc)
		view.Message = message
	}

	h.renderSessionDetail(w, r, view, pageCtx)
}

func (h *Handler) renderSessionDetail(w http.ResponseWriter, r *http.Request, view templates.SessionDetailView, pageCtx templates.PageContext) {
	title := pageCtx.Loc.Sprintf("title.session_detail", templates.AppName, view.Session.ID)
	htmx.RenderPage(w, r,
		templates.SessionDetailPage(view, pageCtx.Loc),
		templates.SessionDetailFullPage(view, pageCtx),
		htmx.TitleTag(title))
}

// redirect sends the browser (or HTMX) to the target URL after an action.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if htmx.IsHTMXRequest(r) {
		w.Header().Set("Location", target)
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// splitPathParts returns non-empty path segments.
func splitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return parts
}
