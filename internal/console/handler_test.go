package console

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/arena/client"
)

func listedSession(id string, status arena.SessionStatus) arena.SessionSummary {
	return arena.SessionSummary{
		ID:            id,
		Status:        status,
		StartTime:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		EntryFee:      10,
		TotalPot:      30,
		TotalAttempts: 1,
	}
}

func postForm(handler http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://"+req.Host)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSessionsPageRendersRows(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		sessions: []arena.SessionSummary{listedSession("s1", arena.StatusActive)},
		details: map[string]arena.SessionDetail{
			"s1": {
				Session:  listedSession("s1", arena.StatusActive),
				Attempts: []arena.Attempt{{ID: "a1", WlddID: "w1", Remaining: 2}},
			},
		},
	}
	handler := NewHandler(api)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "s1") {
		t.Error("body does not list session s1")
	}
	if !strings.Contains(body, "2026-08-30 10:00") {
		t.Error("body does not render the start time")
	}
	if !strings.Contains(body, "10.00 WLDD") {
		t.Error("body does not render the entry fee")
	}
	if !strings.Contains(body, "/sessions/s1/end") {
		t.Error("active session row does not offer the end action")
	}
	if !strings.Contains(body, "<html") {
		t.Error("non-HTMX request did not get the full layout")
	}
}

func TestSessionsPageHTMXFragment(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	handler := NewHandler(api)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("HTMX request rendered the full layout")
	}
	if !strings.Contains(body, "sessions") {
		t.Error("fragment does not contain the sessions content")
	}
}

func TestSessionsPagePartialFetch(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		sessions: []arena.SessionSummary{
			listedSession("s1", arena.StatusCompleted),
			listedSession("s2", arena.StatusCompleted),
		},
		details: map[string]arena.SessionDetail{
			"s1": {Session: listedSession("s1", arena.StatusCompleted), Attempts: []arena.Attempt{{ID: "a1"}}},
		},
		detailErrs: map[string]error{
			"s2": client.New(client.CodeNetwork, "get session detail", "s2", "connection refused"),
		},
	}
	handler := NewHandler(api)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "s1") || !strings.Contains(body, "s2") {
		t.Error("partial failure dropped rows from the table")
	}
	if !strings.Contains(body, "connection refused") {
		t.Error("failed row does not surface the backend error verbatim")
	}
}

func TestSessionDetailPage(t *testing.T) {
	t.Parallel()

	score := 8.5
	earnings := int64(21_000_000)
	api := &fakeAPI{
		details: map[string]arena.SessionDetail{
			"s1": {
				Session: listedSession("s1", arena.StatusCompleted),
				Attempts: []arena.Attempt{
					{ID: "a1", WlddID: "w1", Score: &score, EarningsRaw: &earnings, IsWinner: true},
					{ID: "a2", WlddID: "w2", Remaining: 0},
				},
				WinningConversation: []arena.Message{{Content: "hi", AIResponse: "hello"}},
			},
		},
	}
	handler := NewHandler(api)

	req := httptest.NewRequest(http.MethodGet, "/sessions/s1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "21.00 WLDD") {
		t.Error("winner earnings are not rendered")
	}
	if !strings.Contains(body, "not earned yet") {
		t.Error("unscored attempt does not show the earnings marker")
	}
	if !strings.Contains(body, "Not scored") {
		t.Error("unscored attempt does not show the score marker")
	}
	if !strings.Contains(body, "/attempts/a2/force-score") {
		t.Error("stuck attempt does not offer the force-score action")
	}
	if strings.Contains(body, "/attempts/a1/force-score") {
		t.Error("scored attempt offers the force-score action")
	}
	if !strings.Contains(body, "hello") {
		t.Error("winning conversation is not rendered")
	}
}

func TestSessionCreate(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	handler := NewHandler(api)

	rec := postForm(handler, "/sessions/create", url.Values{
		"entry_fee": {"12.5"},
		"duration":  {"2"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(api.created) != 1 {
		t.Fatalf("created sessions = %d, want 1", len(api.created))
	}
	if api.created[0].EntryFee != 12.5 {
		t.Errorf("entry fee = %v, want 12.5", api.created[0].EntryFee)
	}
}

func TestSessionCreateRejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	handler := NewHandler(api)

	form := url.Values{"entry_fee": {"10"}, "duration": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/sessions/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if len(api.created) != 0 {
		t.Errorf("created sessions = %d, want 0", len(api.created))
	}
}

func TestEndSessionRoute(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		details: map[string]arena.SessionDetail{
			"s1": {Session: listedSession("s1", arena.StatusActive)},
		},
		endResult: arena.DistributionResult{SessionID: "s1", FinalPot: 30, TotalAttempts: 3},
	}
	handler := NewHandler(api)

	rec := postForm(handler, "/sessions/s1/end", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if api.endCalls != 1 {
		t.Errorf("endCalls = %d, want 1", api.endCalls)
	}
}

func TestEndSessionRouteRejectsCompleted(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		details: map[string]arena.SessionDetail{
			"s1": {Session: listedSession("s1", arena.StatusCompleted)},
		},
	}
	handler := NewHandler(api)

	rec := postForm(handler, "/sessions/s1/end", url.Values{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d with inline error", rec.Code, http.StatusOK)
	}
	if api.endCalls != 0 {
		t.Errorf("endCalls = %d, want 0", api.endCalls)
	}
}

func TestForceScoreRoute(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		details: map[string]arena.SessionDetail{
			"s1": {
				Session:  listedSession("s1", arena.StatusActive),
				Attempts: []arena.Attempt{{ID: "a1", Remaining: 0}},
			},
		},
		scoreResult: arena.ForceScoreResult{AttemptID: "a1", Score: 4.2},
	}
	handler := NewHandler(api)

	rec := postForm(handler, "/attempts/a1/force-score", url.Values{"session_id": {"s1"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if api.scoreCalls != 1 {
		t.Errorf("scoreCalls = %d, want 1", api.scoreCalls)
	}
}

func TestLanguageParamSetsCookie(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeAPI{})

	req := httptest.NewRequest(http.MethodGet, "/sessions?lang=pt-BR", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "arena_lang" && cookie.Value == "pt-BR" {
			found = true
		}
	}
	if !found {
		t.Errorf("language cookie not set, cookies = %v", cookies)
	}
}

func TestIndexRedirectsToSessions(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeAPI{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/sessions" {
		t.Errorf("Location = %q, want /sessions", got)
	}
}
