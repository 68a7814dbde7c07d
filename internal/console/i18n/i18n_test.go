package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	tag, persist := ResolveTag(req)
	if tag != language.English {
		t.Errorf("tag = %v, want %v", tag, language.English)
	}
	if persist {
		t.Error("default resolution should not persist a cookie")
	}
}

func TestResolveTagQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/sessions?lang=pt-BR", nil)
	tag, persist := ResolveTag(req)
	if got := tag.String(); got != "pt-BR" {
		t.Errorf("tag = %q, want pt-BR", got)
	}
	if !persist {
		t.Error("query param selection should persist a cookie")
	}
}

func TestResolveTagUnsupportedQueryFallsThrough(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/sessions?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	tag, persist := ResolveTag(req)
	if got := tag.String(); got != "pt-BR" {
		t.Errorf("tag = %q, want pt-BR from cookie", got)
	}
	if persist {
		t.Error("cookie resolution should not persist again")
	}
}

func TestResolveTagCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	tag, _ := ResolveTag(req)
	if got := tag.String(); got != "pt-BR" {
		t.Errorf("tag = %q, want pt-BR", got)
	}
}

func TestResolveTagAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	tag, persist := ResolveTag(req)
	if got := tag.String(); got != "pt-BR" {
		t.Errorf("tag = %q, want pt-BR", got)
	}
	if persist {
		t.Error("header resolution should not persist a cookie")
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.MustParse("pt-BR"))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Errorf("cookie = %s=%s, want %s=pt-BR", cookies[0].Name, cookies[0].Value, LangCookieName)
	}
}

func TestPrinterLocalizes(t *testing.T) {
	t.Parallel()

	en := Printer(language.English).Sprintf("status.active")
	pt := Printer(language.MustParse("pt-BR")).Sprintf("status.active")
	if en == "" || pt == "" {
		t.Fatalf("localized strings missing: en=%q pt=%q", en, pt)
	}
	if en == pt {
		t.Errorf("expected distinct translations, both %q", en)
	}
}
