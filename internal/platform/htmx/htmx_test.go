package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("expected non-HTMX request")
	}
	req.Header.Set(RequestHeaderKey, "true")
	if !IsHTMXRequest(req) {
		t.Fatal("expected HTMX request")
	}
}

func TestTitleTagEscapes(t *testing.T) {
	t.Parallel()

	got := TitleTag("a <b>")
	want := "<title>a &lt;b&gt;</title>"
	if got != want {
		t.Fatalf("title tag = %q, want %q", got, want)
	}
	if TitleTag("  ") != "" {
		t.Fatal("expected empty title tag for blank input")
	}
}

func TestRenderPageUsesFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("<p>fragment</p>"), textComponent("<html>full</html>"), TitleTag("Sessions"))

	body := rec.Body.String()
	if !strings.Contains(body, "fragment") {
		t.Fatalf("body = %q, want fragment content", body)
	}
	if !strings.Contains(body, "<title>Sessions</title>") {
		t.Fatalf("body = %q, want injected title", body)
	}
}

func TestRenderPageUsesFullForNonHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("fragment"), textComponent("<html>full</html>"), "")

	if body := rec.Body.String(); body != "<html>full</html>" {
		t.Fatalf("body = %q, want full page", body)
	}
}

func TestRenderPageExtractsMainFromFull(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	full := textComponent("<html><title>T</title><main class=\"page\">inner</main></html>")
	RenderPage(rec, req, nil, full, "")

	if body := rec.Body.String(); body != "inner" {
		t.Fatalf("body = %q, want extracted main content", body)
	}
}
