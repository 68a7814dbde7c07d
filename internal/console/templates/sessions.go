package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// SessionRow is one formatted row of the session table.
type SessionRow struct {
	ID          string
	Status      string
	StatusBadge string
	Start       string
	End         string
	EntryFee    string
	Pot         string
	Attempts    string
	Winners     string
	// DetailError is shown on the row when its detail fetch failed.
	DetailError string
	// MismatchWarning flags listing/detail attempt count divergence.
	MismatchWarning string
	CanEnd          bool
}

// SessionsPageView is the data for the session list page.
type SessionsPageView struct {
	Rows    []SessionRow
	Message string
	Error   string
}

// SessionsPage renders the session list fragment.
func SessionsPage(view SessionsPageView, loc *message.Printer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="sessions"><h1>%s</h1>
<a href="/sessions" class="refresh" hx-get="/sessions" hx-target="main">%s</a>`,
			html.EscapeString(loc.Sprintf("sessions.heading")),
			html.EscapeString(loc.Sprintf("nav.refresh"))); err != nil {
			return err
		}
		if err := flash(w, "error", view.Error); err != nil {
			return err
		}
		if err := flash(w, "info", view.Message); err != nil {
			return err
		}
		if err := renderSessionsTable(w, view.Rows, loc); err != nil {
			return err
		}
		if err := renderCreateForm(w, loc); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// SessionsFullPage renders the session list inside the layout.
func SessionsFullPage(view SessionsPageView, pageCtx PageContext) templ.Component {
	title := pageCtx.Loc.Sprintf("title.sessions", AppName)
	return Layout(title, SessionsPage(view, pageCtx.Loc), pageCtx)
}

func renderSessionsTable(w io.Writer, rows []SessionRow, loc *message.Printer) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`,
			html.EscapeString(loc.Sprintf("sessions.empty")))
		return err
	}
	if _, err := fmt.Fprintf(w, `<table class="session-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th></th></tr></thead><tbody>`,
		html.EscapeString(loc.Sprintf("sessions.col.id")),
		html.EscapeString(loc.Sprintf("sessions.col.status")),
		html.EscapeString(loc.Sprintf("sessions.col.start")),
		html.EscapeString(loc.Sprintf("sessions.col.end")),
		html.EscapeString(loc.Sprintf("sessions.col.entry_fee")),
		html.EscapeString(loc.Sprintf("sessions.col.pot")),
		html.EscapeString(loc.Sprintf("sessions.col.attempts")),
		html.EscapeString(loc.Sprintf("sessions.col.winners")),
	); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, `<tr><td><a href="/sessions/%s">%s</a></td><td><span class="badge %s">%s</span></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
			attr(row.ID), html.EscapeString(row.ID),
			attr(row.StatusBadge), html.EscapeString(row.Status),
			html.EscapeString(row.Start), html.EscapeString(row.End),
			html.EscapeString(row.EntryFee), html.EscapeString(row.Pot),
			html.EscapeString(row.Attempts), html.EscapeString(row.Winners),
		); err != nil {
			return err
		}
		if row.CanEnd {
			if _, err := fmt.Fprintf(w, `<form method="post" action="/sessions/%s/end"><button type="submit">%s</button></form>`,
				attr(row.ID), html.EscapeString(loc.Sprintf("action.end_session"))); err != nil {
				return err
			}
		}
		if row.DetailError != "" {
			if err := flash(w, "error", row.DetailError); err != nil {
				return err
			}
		}
		if row.MismatchWarning != "" {
			if err := flash(w, "warning", row.MismatchWarning); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</td></tr>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func renderCreateForm(w io.Writer, loc *message.Printer) error {
	_, err := fmt.Fprintf(w, `<form method="post" action="/sessions/create" class="create-session">
<h2>%s</h2>
<label>%s <input type="number" name="entry_fee" step="0.01" min="0.01" value="10"></label>
<label>%s <input type="number" name="duration" min="1" value="1"></label>
<button type="submit">%s</button>
</form>`,
		html.EscapeString(loc.Sprintf("sessions.create.heading")),
		html.EscapeString(loc.Sprintf("sessions.create.entry_fee")),
		html.EscapeString(loc.Sprintf("sessions.create.duration")),
		html.EscapeString(loc.Sprintf("sessions.create.submit")),
	)
	return err
}
