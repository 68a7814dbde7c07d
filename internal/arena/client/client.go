// Package client implements the typed HTTP façade over the Arena backend
// admin API. It maps requests and responses only; business rules live with
// the callers, and no call caches or mutates local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/arena/credential"
	"github.com/arenaworks/console/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AdminKeyHeader carries the opaque admin credential on every request.
const AdminKeyHeader = "X-Admin-Key"

// tracerName identifies client spans in trace exports.
const tracerName = "arena/client"

// The backend renders listing timestamps as "YYYY-MM-DD HH:MM" and action
// responses as RFC 3339; both layouts are accepted on decode.
var wireTimeLayouts = []string{"2006-01-02 15:04", time.RFC3339}

// Client calls the Arena backend admin API.
type Client struct {
	baseURL     string
	credentials credential.Provider
	httpClient  *http.Client
	tracer      trace.Tracer
}

// NewClient creates a client for the backend at baseURL. The credential provider
// is consulted on every call; its result is attached as the admin key
// header. A nil httpClient falls back to a default with the shared API
// request timeout.
func NewClient(baseURL string, credentials credential.Provider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	return &Client{
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		credentials: credentials,
		httpClient:  httpClient,
		tracer:      otel.Tracer(tracerName),
	}
}

// ListSessions returns all sessions in the backend's listing order.
func (c *Client) ListSessions(ctx context.Context) ([]arena.SessionSummary, error) {
	const op = "list sessions"

	var wire []sessionSummaryWire
	if err := c.do(ctx, op, "", http.MethodGet, "/admin/sessions", nil, &wire); err != nil {
		return nil, err
	}

	sessions := make([]arena.SessionSummary, 0, len(wire))
	for _, w := range wire {
		session, err := w.toDomain()
		if err != nil {
			return nil, Wrap(CodeMalformedResponse, op, w.ID, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// GetSessionDetail returns one session with its attempts and, for completed
// sessions, the winning conversation when the backend includes it.
func (c *Client) GetSessionDetail(ctx context.Context, sessionID string) (arena.SessionDetail, error) {
	const op = "get session detail"

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return arena.SessionDetail{}, New(CodeValidation, op, "", "session id is required")
	}

	var wire sessionDetailWire
	if err := c.do(ctx, op, sessionID, http.MethodGet, "/admin/sessions/"+url.PathEscape(sessionID), nil, &wire); err != nil {
		return arena.SessionDetail{}, err
	}

	detail, err := wire.toDomain()
	if err != nil {
		return arena.SessionDetail{}, Wrap(CodeMalformedResponse, op, sessionID, err)
	}
	return detail, nil
}

// CreateSession creates a new active session. The entry fee must be positive
// and the duration at least one hour; invalid parameters are rejected
// without a network round trip.
func (c *Client) CreateSession(ctx context.Context, entryFee float64, durationHours int) (arena.SessionSummary, error) {
	const op = "create session"

	if entryFee <= 0 {
		return arena.SessionSummary{}, New(CodeValidation, op, "", fmt.Sprintf("entry fee must be positive, got %v", entryFee))
	}
	if durationHours < 1 {
		return arena.SessionSummary{}, New(CodeValidation, op, "", fmt.Sprintf("duration must be at least one hour, got %d", durationHours))
	}

	query := url.Values{}
	query.Set("entry_fee", strconv.FormatFloat(entryFee, 'f', -1, 64))
	query.Set("duration", strconv.Itoa(durationHours))

	var wire createSessionWire
	if err := c.do(ctx, op, "", http.MethodPost, "/admin/sessions/create", query, &wire); err != nil {
		return arena.SessionSummary{}, err
	}

	session, err := wire.toDomain()
	if err != nil {
		return arena.SessionSummary{}, Wrap(CodeMalformedResponse, op, wire.SessionID, err)
	}
	return session, nil
}

// EndSession ends an active session and returns the backend's pot
// distribution. Ending a non-active session is a caller contract violation;
// callers gate on session state first, and a server-side rejection maps to
// CodeInvalidState.
func (c *Client) EndSession(ctx context.Context, sessionID string) (arena.DistributionResult, error) {
	const op = "end session"

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return arena.DistributionResult{}, New(CodeValidation, op, "", "session id is required")
	}

	var wire distributionWire
	if err := c.do(ctx, op, sessionID, http.MethodPut, "/sessions/"+url.PathEscape(sessionID)+"/end", nil, &wire); err != nil {
		return arena.DistributionResult{}, err
	}
	return wire.toDomain(sessionID), nil
}

// ForceScore finalizes a stuck attempt's score.
func (c *Client) ForceScore(ctx context.Context, attemptID string) (arena.ForceScoreResult, error) {
	const op = "force score"

	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return arena.ForceScoreResult{}, New(CodeValidation, op, "", "attempt id is required")
	}

	var wire forceScoreWire
	if err := c.do(ctx, op, attemptID, http.MethodPost, "/attempts/"+url.PathEscape(attemptID)+"/force-score", nil, &wire); err != nil {
		return arena.ForceScoreResult{}, err
	}
	return arena.ForceScoreResult{AttemptID: attemptID, Score: wire.Score}, nil
}

// do issues one authenticated request and decodes a 2xx response into out.
func (c *Client) do(ctx context.Context, op, target, method, path string, query url.Values, out any) error {
	ctx, span := c.tracer.Start(ctx, op)
	defer span.End()

	fail := func(err *Error) error {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(err.Code))
		return err
	}

	key, err := c.credentials.Get(ctx)
	if err != nil {
		return fail(Wrapf(CodeAuth, op, target, err, "obtain admin credential"))
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fail(Wrap(CodeNetwork, op, target, err))
	}
	req.Header.Set(AdminKeyHeader, key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(Wrap(CodeNetwork, op, target, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fail(statusError(op, target, resp))
	}

	if out == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(Wrap(CodeNetwork, op, target, err))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fail(Wrap(CodeMalformedResponse, op, target, err))
	}
	return nil
}

// statusError maps a non-2xx response to a typed error, preserving the
// backend's own message so operators see it verbatim.
func statusError(op, target string, resp *http.Response) *Error {
	code := CodeNetwork
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		code = CodeAuth
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = CodeValidation
	case http.StatusConflict:
		code = CodeInvalidState
	}

	message := resp.Status
	if detail := readErrorDetail(resp.Body); detail != "" {
		message = detail
	}
	return New(code, op, target, message)
}

// readErrorDetail extracts the backend's {"detail": "..."} error body.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSpace(payload.Detail)
}

// scoreValue decodes the backend's score field, which is either a number or
// a "Not scored" string sentinel.
type scoreValue struct {
	value *float64
}

func (s *scoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		// Any string form means the attempt is unscored.
		return nil
	}
	var score float64
	if err := json.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	s.value = &score
	return nil
}

type sessionSummaryWire struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	EntryFee  float64 `json:"entry_fee"`
	TotalPot  float64 `json:"total_pot"`
	Attempts  int     `json:"attempts"`
	Winners   int     `json:"winners"`
}

func (w sessionSummaryWire) toDomain() (arena.SessionSummary, error) {
	if strings.TrimSpace(w.ID) == "" {
		return arena.SessionSummary{}, errors.New("session id is missing")
	}
	status, err := parseStatus(w.Status)
	if err != nil {
		return arena.SessionSummary{}, err
	}
	startTime, err := parseWireTime(w.StartTime)
	if err != nil {
		return arena.SessionSummary{}, fmt.Errorf("start_time: %w", err)
	}
	endTime, err := parseWireTime(w.EndTime)
	if err != nil {
		return arena.SessionSummary{}, fmt.Errorf("end_time: %w", err)
	}
	if w.Attempts < 0 {
		return arena.SessionSummary{}, fmt.Errorf("attempt count is negative: %d", w.Attempts)
	}
	return arena.SessionSummary{
		ID:            w.ID,
		Status:        status,
		StartTime:     startTime,
		EndTime:       endTime,
		EntryFee:      w.EntryFee,
		TotalPot:      w.TotalPot,
		TotalAttempts: w.Attempts,
		Winners:       w.Winners,
	}, nil
}

type messageWire struct {
	Content    string `json:"content"`
	AIResponse string `json:"ai_response"`
}

type attemptWire struct {
	ID           string        `json:"id"`
	User         string        `json:"user"`
	WlddID       string        `json:"wldd_id"`
	Score        scoreValue    `json:"score"`
	MessageCount int           `json:"message_count"`
	Messages     []messageWire `json:"messages"`
	Remaining    int           `json:"remaining"`
	EarningsRaw  *int64        `json:"earnings_raw"`
	IsWinner     bool          `json:"is_winner"`
}

func (w attemptWire) toDomain() (arena.Attempt, error) {
	if strings.TrimSpace(w.ID) == "" {
		return arena.Attempt{}, errors.New("attempt id is missing")
	}
	if w.Remaining < 0 {
		return arena.Attempt{}, fmt.Errorf("remaining is negative: %d", w.Remaining)
	}
	// "user" and "wldd_id" are aliases of the same backend field.
	participant := w.WlddID
	if participant == "" {
		participant = w.User
	}
	messages := make([]arena.Message, 0, len(w.Messages))
	for _, m := range w.Messages {
		messages = append(messages, arena.Message{Content: m.Content, AIResponse: m.AIResponse})
	}
	return arena.Attempt{
		ID:           w.ID,
		WlddID:       participant,
		Score:        w.Score.value,
		Remaining:    w.Remaining,
		EarningsRaw:  w.EarningsRaw,
		IsWinner:     w.IsWinner,
		Messages:     messages,
		MessageCount: w.MessageCount,
	}, nil
}

type sessionDetailWire struct {
	Session             sessionSummaryWire `json:"session"`
	Attempts            []attemptWire      `json:"attempts"`
	WinningConversation []messageWire      `json:"winning_conversation"`
}

func (w sessionDetailWire) toDomain() (arena.SessionDetail, error) {
	session, err := w.Session.toDomain()
	if err != nil {
		return arena.SessionDetail{}, err
	}
	attempts := make([]arena.Attempt, 0, len(w.Attempts))
	for _, aw := range w.Attempts {
		attempt, err := aw.toDomain()
		if err != nil {
			return arena.SessionDetail{}, err
		}
		attempts = append(attempts, attempt)
	}
	conversation := make([]arena.Message, 0, len(w.WinningConversation))
	for _, m := range w.WinningConversation {
		conversation = append(conversation, arena.Message{Content: m.Content, AIResponse: m.AIResponse})
	}
	if len(conversation) == 0 {
		conversation = nil
	}
	return arena.SessionDetail{
		Session:             session,
		Attempts:            attempts,
		WinningConversation: conversation,
	}, nil
}

type createSessionWire struct {
	SessionID string  `json:"session_id"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	EntryFee  float64 `json:"entry_fee"`
}

func (w createSessionWire) toDomain() (arena.SessionSummary, error) {
	if strings.TrimSpace(w.SessionID) == "" {
		return arena.SessionSummary{}, errors.New("session id is missing")
	}
	startTime, err := parseWireTime(w.StartTime)
	if err != nil {
		return arena.SessionSummary{}, fmt.Errorf("start_time: %w", err)
	}
	endTime, err := parseWireTime(w.EndTime)
	if err != nil {
		return arena.SessionSummary{}, fmt.Errorf("end_time: %w", err)
	}
	// Creation always yields an active session; the status is server-assigned
	// and not echoed in the payload.
	return arena.SessionSummary{
		ID:        w.SessionID,
		Status:    arena.StatusActive,
		StartTime: startTime,
		EndTime:   endTime,
		EntryFee:  w.EntryFee,
	}, nil
}

type distributionEntryWire struct {
	User     string  `json:"user"`
	WlddID   string  `json:"wldd_id"`
	Score    float64 `json:"score"`
	Earnings int64   `json:"earnings"`
}

type distributionWire struct {
	SessionID     string                  `json:"session_id"`
	FinalPot      float64                 `json:"final_pot"`
	TotalAttempts int                     `json:"total_attempts"`
	Distributions []distributionEntryWire `json:"distributions"`
}

func (w distributionWire) toDomain(sessionID string) arena.DistributionResult {
	if strings.TrimSpace(w.SessionID) != "" {
		sessionID = w.SessionID
	}
	entries := make([]arena.DistributionEntry, 0, len(w.Distributions))
	for _, e := range w.Distributions {
		participant := e.WlddID
		if participant == "" {
			participant = e.User
		}
		entries = append(entries, arena.DistributionEntry{
			WlddID:      participant,
			Score:       e.Score,
			EarningsRaw: e.Earnings,
		})
	}
	return arena.DistributionResult{
		SessionID:     sessionID,
		FinalPot:      w.FinalPot,
		TotalAttempts: w.TotalAttempts,
		Distributions: entries,
	}
}

type forceScoreWire struct {
	Score float64 `json:"score"`
}

func parseStatus(value string) (arena.SessionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "active":
		return arena.StatusActive, nil
	case "completed":
		return arena.StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown session status %q", value)
	}
}

func parseWireTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
