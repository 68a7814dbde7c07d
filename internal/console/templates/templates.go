// Package templates renders the console pages. Components implement
// templ.Component so handlers can serve fragments or full pages through the
// same plumbing.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// AppName is the product label shown in page titles and the header.
const AppName = "Arena Console"

// PageContext carries per-request rendering state into full page layouts.
type PageContext struct {
	Lang string
	Loc  *message.Printer
}

// Layout wraps content in the full HTML document with navigation.
func Layout(title string, content templ.Component, pageCtx PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang=%q>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/console.css">
</head>
<body>
<header class="topbar">
<a href="/" class="brand">%s</a>
<nav>
<a href="/sessions" hx-get="/sessions" hx-target="main" hx-push-url="true">%s</a>
</nav>
</header>
<main id="main">`,
			attr(pageCtx.Lang), html.EscapeString(title), html.EscapeString(AppName),
			html.EscapeString(pageCtx.Loc.Sprintf("nav.sessions"))); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>")
		return err
	})
}

// flash renders a status or error banner when the text is non-empty.
func flash(w io.Writer, class, text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="flash %s">%s</p>`, attr(class), html.EscapeString(text))
	return err
}

func attr(value string) string {
	return html.EscapeString(value)
}
