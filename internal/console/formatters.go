package console

import (
	"strconv"
	"time"

	"github.com/arenaworks/console/internal/arena"
	"github.com/arenaworks/console/internal/console/templates"
	"golang.org/x/text/message"
)

// timeLayout renders session timestamps the way the backend lists them.
const timeLayout = "2006-01-02 15:04"

// notScoredLabel marks attempts whose scoring has not finished.
const notScoredLabel = "Not scored"

// buildSessionRow formats one aggregated record into a table row.
func buildSessionRow(record SessionRecord, loc *message.Printer) templates.SessionRow {
	summary := record.Summary
	status, badge := formatStatus(summary.Status, loc)
	row := templates.SessionRow{
		ID:          summary.ID,
		Status:      status,
		StatusBadge: badge,
		Start:       formatTime(summary.StartTime),
		End:         formatTime(summary.EndTime),
		EntryFee:    formatMoney(summary.EntryFee),
		Pot:         formatMoney(summary.TotalPot),
		Attempts:    strconv.Itoa(summary.TotalAttempts),
		Winners:     strconv.Itoa(summary.Winners),
		CanEnd:      arena.CanEndSession(summary),
	}
	if record.Err != nil {
		row.DetailError = loc.Sprintf("error.session_unavailable", record.Err.Error())
	}
	if record.CountMismatch {
		row.MismatchWarning = loc.Sprintf("session.count_mismatch", summary.TotalAttempts, len(record.Detail.Attempts))
	}
	return row
}

// buildSessionDetailView formats a detail payload for rendering.
func buildSessionDetailView(detail arena.SessionDetail, loc *message.Printer) templates.SessionDetailView {
	status, badge := formatStatus(detail.Session.Status, loc)
	view := templates.SessionDetailView{
		Session: templates.SessionRow{
			ID:          detail.Session.ID,
			Status:      status,
			StatusBadge: badge,
			Start:       formatTime(detail.Session.StartTime),
			End:         formatTime(detail.Session.EndTime),
			EntryFee:    formatMoney(detail.Session.EntryFee),
			Pot:         formatMoney(detail.Session.TotalPot),
			CanEnd:      arena.CanEndSession(detail.Session),
		},
	}
	for _, attempt := range detail.Attempts {
		view.Attempts = append(view.Attempts, buildAttemptRow(attempt, loc))
	}
	for _, msg := range detail.WinningConversation {
		view.WinningConversation = append(view.WinningConversation, templates.MessageView{
			Content:    msg.Content,
			AIResponse: msg.AIResponse,
		})
	}
	return view
}

// buildAttemptRow formats one attempt for the detail page.
func buildAttemptRow(attempt arena.Attempt, loc *message.Printer) templates.AttemptRow {
	badge := arena.ResultBadge(attempt)
	row := templates.AttemptRow{
		ID:            attempt.ID,
		WlddID:        attempt.WlddID,
		Score:         formatScore(attempt),
		Badge:         badgeLabel(badge, loc),
		BadgeClass:    badgeClass(badge),
		Remaining:     strconv.Itoa(attempt.Remaining),
		MessageCount:  strconv.Itoa(attempt.MessageCount),
		Earnings:      arena.FormatEarnings(attempt.EarningsRaw),
		CanForceScore: arena.CanForceScore(attempt),
	}
	for _, msg := range attempt.Messages {
		row.Messages = append(row.Messages, templates.MessageView{
			Content:    msg.Content,
			AIResponse: msg.AIResponse,
		})
	}
	return row
}

func formatStatus(status arena.SessionStatus, loc *message.Printer) (label string, badge string) {
	switch status {
	case arena.StatusActive:
		return loc.Sprintf("status.active"), "success"
	case arena.StatusCompleted:
		return loc.Sprintf("status.completed"), "secondary"
	default:
		return string(status), "secondary"
	}
}

func badgeLabel(badge arena.Badge, loc *message.Printer) string {
	switch badge {
	case arena.BadgeInProgress:
		return loc.Sprintf("badge.in_progress")
	case arena.BadgeWinner:
		return loc.Sprintf("badge.winner")
	default:
		return loc.Sprintf("badge.not_winner")
	}
}

func badgeClass(badge arena.Badge) string {
	switch badge {
	case arena.BadgeWinner:
		return "success"
	case arena.BadgeInProgress:
		return "pending"
	default:
		return "secondary"
	}
}

func formatScore(attempt arena.Attempt) string {
	if !attempt.Scored() {
		return notScoredLabel
	}
	return strconv.FormatFloat(*attempt.Score, 'f', -1, 64)
}

func formatMoney(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + arena.EarningsCurrency
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(timeLayout)
}
