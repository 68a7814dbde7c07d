package arena

import "time"

// SessionStatus describes the lifecycle state of a session.
//
// The only transition is active to completed, it is irreversible, and it is
// triggered solely by the end-session action on the backend.
type SessionStatus string

const (
	// StatusActive indicates the session is open for attempts.
	StatusActive SessionStatus = "active"
	// StatusCompleted indicates the session has ended and its pot was
	// distributed.
	StatusCompleted SessionStatus = "completed"
)

// SessionSummary is one row of the admin session listing.
type SessionSummary struct {
	ID            string
	Status        SessionStatus
	StartTime     time.Time
	EndTime       time.Time
	EntryFee      float64
	TotalPot      float64
	TotalAttempts int
	Winners       int
}

// Message is one entry of an attempt's conversation log.
type Message struct {
	Content    string
	AIResponse string
}

// Attempt is one participant's play against a session.
type Attempt struct {
	ID string
	// WlddID identifies the participant. The backend exposes the same field
	// under both "user" and "wldd_id".
	WlddID string
	// Score is nil while the attempt has not been scored.
	Score *float64
	// Remaining counts turns left before scoring is possible.
	Remaining int
	// EarningsRaw is the earned amount in the smallest currency unit
	// (millionths of a WLDD); nil means nothing earned yet.
	EarningsRaw *int64
	// IsWinner is meaningful only once Score is set.
	IsWinner     bool
	Messages     []Message
	MessageCount int
}

// Scored reports whether the attempt has a final score.
func (a Attempt) Scored() bool {
	return a.Score != nil
}

// SessionDetail is the full admin view of one session.
type SessionDetail struct {
	Session  SessionSummary
	Attempts []Attempt
	// WinningConversation holds the winning attempt's message log when the
	// backend includes it for completed sessions.
	WinningConversation []Message
}

// AttemptCountMismatch reports whether a listing summary's attempt counter
// disagrees with the detail attempt list fetched for the same session. The
// two may diverge transiently while a detail fetch races new attempts; a
// divergence is surfaced to the operator rather than trusting either field.
func AttemptCountMismatch(s SessionSummary, d SessionDetail) bool {
	return s.TotalAttempts != len(d.Attempts)
}

// DistributionEntry is one participant's share of a finished session's pot.
type DistributionEntry struct {
	WlddID      string
	Score       float64
	EarningsRaw int64
}

// DistributionResult is the backend's finalization report for an ended
// session.
type DistributionResult struct {
	SessionID     string
	FinalPot      float64
	TotalAttempts int
	Distributions []DistributionEntry
}

// ForceScoreResult is the backend's response to a forced scoring.
type ForceScoreResult struct {
	AttemptID string
	Score     float64
}
