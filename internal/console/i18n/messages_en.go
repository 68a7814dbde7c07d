package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "title.sessions", "%s | Sessions")
	message.SetString(lang, "title.session_detail", "%s | Session %s")
	message.SetString(lang, "nav.sessions", "Sessions")
	message.SetString(lang, "nav.refresh", "Refresh")

	// Session list
	message.SetString(lang, "sessions.heading", "Sessions")
	message.SetString(lang, "sessions.col.id", "ID")
	message.SetString(lang, "sessions.col.status", "Status")
	message.SetString(lang, "sessions.col.start", "Start")
	message.SetString(lang, "sessions.col.end", "End")
	message.SetString(lang, "sessions.col.entry_fee", "Entry fee")
	message.SetString(lang, "sessions.col.pot", "Pot")
	message.SetString(lang, "sessions.col.attempts", "Attempts")
	message.SetString(lang, "sessions.col.winners", "Winners")
	message.SetString(lang, "sessions.empty", "No sessions yet")
	message.SetString(lang, "sessions.create.heading", "Create session")
	message.SetString(lang, "sessions.create.entry_fee", "Entry fee (WLDD)")
	message.SetString(lang, "sessions.create.duration", "Duration (hours)")
	message.SetString(lang, "sessions.create.submit", "Create")
	message.SetString(lang, "sessions.create.success", "Session %s created")

	// Session detail
	message.SetString(lang, "session.heading", "Session %s")
	message.SetString(lang, "session.attempts.heading", "Attempts")
	message.SetString(lang, "session.attempts.none", "No attempts for this session")
	message.SetString(lang, "session.attempt.score", "Score")
	message.SetString(lang, "session.attempt.messages", "Messages")
	message.SetString(lang, "session.attempt.remaining", "Remaining")
	message.SetString(lang, "session.attempt.earnings", "Earnings")
	message.SetString(lang, "session.winning_conversation", "Winning conversation")
	message.SetString(lang, "session.count_mismatch", "Attempt count reported by the listing (%d) does not match the detail (%d)")

	// Result badges
	message.SetString(lang, "badge.in_progress", "in progress")
	message.SetString(lang, "badge.winner", "winner")
	message.SetString(lang, "badge.not_winner", "not a winner")

	// Status labels
	message.SetString(lang, "status.active", "active")
	message.SetString(lang, "status.completed", "completed")

	// Actions
	message.SetString(lang, "action.end_session", "End session")
	message.SetString(lang, "action.force_score", "Force score")
	message.SetString(lang, "action.end_session.success", "Session %s ended; pot %s distributed over %d attempts")
	message.SetString(lang, "action.force_score.success", "Attempt %s scored %s")

	// Errors
	message.SetString(lang, "error.sessions_unavailable", "Could not load sessions: %s")
	message.SetString(lang, "error.session_unavailable", "Could not load session: %s")
	message.SetString(lang, "error.partial_fetch", "Some session details could not be loaded")
	message.SetString(lang, "error.action_failed", "Action failed: %s")
	message.SetString(lang, "error.csrf_invalid", "Request origin is not allowed")
}
