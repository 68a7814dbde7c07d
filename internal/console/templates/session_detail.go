package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// MessageView is one exchange of an attempt conversation.
type MessageView struct {
	Content    string
	AIResponse string
}

// AttemptRow is one formatted attempt of a session detail page.
type AttemptRow struct {
	ID            string
	WlddID        string
	Score         string
	Badge         string
	BadgeClass    string
	Remaining     string
	MessageCount  string
	Earnings      string
	CanForceScore bool
	Messages      []MessageView
}

// SessionDetailView is the data for the session detail page.
type SessionDetailView struct {
	Session             SessionRow
	Attempts            []AttemptRow
	WinningConversation []MessageView
	Message             string
	Error               string
	MismatchWarning     string
}

// SessionDetailPage renders the session detail fragment.
func SessionDetailPage(view SessionDetailView, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="session-detail"><h1>%s</h1>`,
			html.EscapeString(loc.Sprintf("session.heading", view.Session.ID))); err != nil {
			return err
		}
		if err := flash(w, "error", view.Error); err != nil {
			return err
		}
		if err := flash(w, "info", view.Message); err != nil {
			return err
		}
		if err := flash(w, "warning", view.MismatchWarning); err != nil {
			return err
		}
		if err := renderSessionFacts(w, view.Session, loc); err != nil {
			return err
		}
		if err := renderAttempts(w, view, loc); err != nil {
			return err
		}
		if err := renderWinningConversation(w, view.WinningConversation, loc); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// SessionDetailFullPage renders the session detail inside the layout.
func SessionDetailFullPage(view SessionDetailView, pageCtx PageContext) templ.Component {
	title := pageCtx.Loc.Sprintf("title.session_detail", AppName, view.Session.ID)
	return Layout(title, SessionDetailPage(view, pageCtx.Loc), pageCtx)
}

func renderSessionFacts(w io.Writer, session SessionRow, loc *message.Printer) error {
	if _, err := fmt.Fprintf(w, `<dl class="session-facts">
<dt>%s</dt><dd><span class="badge %s">%s</span></dd>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
</dl>`,
		html.EscapeString(loc.Sprintf("sessions.col.status")), attr(session.StatusBadge), html.EscapeString(session.Status),
		html.EscapeString(loc.Sprintf("sessions.col.start")), html.EscapeString(session.Start),
		html.EscapeString(loc.Sprintf("sessions.col.end")), html.EscapeString(session.End),
		html.EscapeString(loc.Sprintf("sessions.col.entry_fee")), html.EscapeString(session.EntryFee),
		html.EscapeString(loc.Sprintf("sessions.col.pot")), html.EscapeString(session.Pot),
	); err != nil {
		return err
	}
	if session.CanEnd {
		if _, err := fmt.Fprintf(w, `<form method="post" action="/sessions/%s/end"><button type="submit">%s</button></form>`,
			attr(session.ID), html.EscapeString(loc.Sprintf("action.end_session"))); err != nil {
			return err
		}
	}
	return nil
}

func renderAttempts(w io.Writer, view SessionDetailView, loc *message.Printer) error {
	if _, err := fmt.Fprintf(w, `<h2>%s</h2>`,
		html.EscapeString(loc.Sprintf("session.attempts.heading"))); err != nil {
		return err
	}
	if len(view.Attempts) == 0 {
		_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`,
			html.EscapeString(loc.Sprintf("session.attempts.none")))
		return err
	}
	for _, attempt := range view.Attempts {
		if _, err := fmt.Fprintf(w, `<article class="attempt">
<header><strong>%s</strong> <span class="badge %s">%s</span></header>
<dl>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
<dt>%s</dt><dd>%s</dd>
</dl>`,
			html.EscapeString(attempt.WlddID), attr(attempt.BadgeClass), html.EscapeString(attempt.Badge),
			html.EscapeString(loc.Sprintf("session.attempt.score")), html.EscapeString(attempt.Score),
			html.EscapeString(loc.Sprintf("session.attempt.messages")), html.EscapeString(attempt.MessageCount),
			html.EscapeString(loc.Sprintf("session.attempt.remaining")), html.EscapeString(attempt.Remaining),
			html.EscapeString(loc.Sprintf("session.attempt.earnings")), html.EscapeString(attempt.Earnings),
		); err != nil {
			return err
		}
		if attempt.CanForceScore {
			if _, err := fmt.Fprintf(w, `<form method="post" action="/attempts/%s/force-score"><input type="hidden" name="session_id" value=%q><button type="submit">%s</button></form>`,
				attr(attempt.ID), attr(view.Session.ID),
				html.EscapeString(loc.Sprintf("action.force_score"))); err != nil {
				return err
			}
		}
		if err := renderMessages(w, attempt.Messages); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</article>`); err != nil {
			return err
		}
	}
	return nil
}

func renderWinningConversation(w io.Writer, messages []MessageView, loc *message.Printer) error {
	if len(messages) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<h2>%s</h2><div class="winning-conversation">`,
		html.EscapeString(loc.Sprintf("session.winning_conversation"))); err != nil {
		return err
	}
	if err := renderMessages(w, messages); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func renderMessages(w io.Writer, messages []MessageView) error {
	if len(messages) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `<ol class="conversation">`); err != nil {
		return err
	}
	for _, msg := range messages {
		if _, err := fmt.Fprintf(w, `<li><p class="player">%s</p><p class="ai">%s</p></li>`,
			html.EscapeString(msg.Content), html.EscapeString(msg.AIResponse)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ol>`)
	return err
}
