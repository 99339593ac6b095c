package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, target string, header map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestResolveLocaleQueryWins(t *testing.T) {
	c := newTestContext(t, "/?lang=ru", map[string]string{"Accept-Language": "en-US"})
	if got := ResolveLocale(c); got != "ru-RU" {
		t.Fatalf("locale want ru-RU got %s", got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	c := newTestContext(t, "/", map[string]string{"Accept-Language": "ru-RU,ru;q=0.9,en;q=0.5"})
	if got := ResolveLocale(c); got != "ru-RU" {
		t.Fatalf("locale want ru-RU got %s", got)
	}
}

func TestResolveLocaleFallback(t *testing.T) {
	c := newTestContext(t, "/", map[string]string{"Accept-Language": "fr-FR"})
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("locale want %s got %s", DefaultLocale, got)
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	if got := T("en-US", "error.__missing__"); got != "error.__missing__" {
		t.Fatalf("unknown key should pass through, got %s", got)
	}
}

func TestTranslateFallsBackToDefaultLocale(t *testing.T) {
	if got := T("de-DE", "error.cart_not_found"); got != messages[DefaultLocale]["error.cart_not_found"] {
		t.Fatalf("unexpected translation: %s", got)
	}
}
