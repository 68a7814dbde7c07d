package console

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/console/templates"
	"github.com/arenaworks/console/internal/platform/timeouts"
)

const (
	defaultEntryFee      = 10.0
	defaultDurationHours = 1
)

// handleSessionCreate creates a session from a form submission.
func (h *Handler) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	renderError := func(errText string) {
		view := templates.SessionsPageView{Error: errText}
		templ.Handler(templates.SessionsFullPage(view, pageCtx)).ServeHTTP(w, r)
	}

	if err := r.ParseForm(); err != nil {
		renderError(loc.Sprintf("error.action_failed", err.Error()))
		return
	}

	entryFee := defaultEntryFee
	if raw := strings.TrimSpace(r.FormValue("entry_fee")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			renderError(loc.Sprintf("error.action_failed", err.Error()))
			return
		}
		entryFee = parsed
	}
	duration := defaultDurationHours
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			renderError(loc.Sprintf("error.action_failed", err.Error()))
			return
		}
		duration = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	session, err := h.api.CreateSession(ctx, entryFee, duration)
	if err != nil {
		log.Printf("create session: %v", err)
		renderError(loc.Sprintf("error.action_failed", err.Error()))
		return
	}

	success := loc.Sprintf("sessions.create.success", session.ID)
	redirect(w, r, "/sessions?message="+url.QueryEscape(success))
}

// handleEndSession ends an active session and reports the distribution.
func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	detail, err := h.api.GetSessionDetail(ctx, sessionID)
	if err != nil {
		log.Printf("get session for end: %v", err)
		view := templates.SessionDetailView{
			Session: templates.SessionRow{ID: sessionID},
			Error:   loc.Sprintf("error.session_unavailable", err.Error()),
		}
		h.renderSessionDetail(w, r, view, pageCtx)
		return
	}

	result, err := h.runner.EndSession(ctx, detail.Session)
	if err != nil {
		log.Printf("end session: %v", err)
		view := buildSessionDetailView(detail, loc)
		view.Error = loc.Sprintf("error.action_failed", err.Error())
		h.renderSessionDetail(w, r, view, pageCtx)
		return
	}

	success := loc.Sprintf("action.end_session.success",
		result.SessionID, formatMoney(result.FinalPot), result.TotalAttempts)
	redirect(w, r, "/sessions/"+url.PathEscape(sessionID)+"?message="+url.QueryEscape(success))
}

// handleForceScore finalizes a stuck attempt's score.
func (h *Handler) handleForceScore(w http.ResponseWriter, r *http.Request, attemptID string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.action_failed", err.Error()), http.StatusBadRequest)
		return
	}
	sessionID := strings.TrimSpace(r.FormValue("session_id"))
	if sessionID == "" {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	detail, err := h.api.GetSessionDetail(ctx, sessionID)
	if err != nil {
		log.Printf("get session for force score: %v", err)
		view := templates.SessionDetailView{
			Session: templates.SessionRow{ID: sessionID},
			Error:   loc.Sprintf("error.session_unavailable", err.Error()),
		}
		h.renderSessionDetail(w, r, view, pageCtx)
		return
	}

	attempt, ok := findAttempt(detail, attemptID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	result, err := h.runner.ForceScore(ctx, attempt)
	if err != nil {
		log.Printf("force score: %v", err)
		view := buildSessionDetailView(detail, loc)
		view.Error = loc.Sprintf("error.action_failed", err.Error())
		h.renderSessionDetail(w, r, view, pageCtx)
		return
	}

	success := loc.Sprintf("action.force_score.success",
		result.AttemptID, strconv.FormatFloat(result.Score, 'f', -1, 64))
	redirect(w, r, "/sessions/"+url.PathEscape(sessionID)+"?message="+url.QueryEscape(success))
}

func findAttempt(detail arena.SessionDetail, attemptID string) (arena.Attempt, bool) {
	for _, candidate := range detail.Attempts {
		if candidate.ID == attemptID {
			return candidate, true
		}
	}
	return arena.Attempt{}, false
}
