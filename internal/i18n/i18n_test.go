//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()

	assert.NotNil(t, translator1)
	assert.Same(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "portuguese label", key: LabelKeyExtrasTitle, locale: "pt", expected: "Adicionais"},
		{name: "portuguese total", key: LabelKeyTotalTitle, locale: "pt", expected: "Total do pedido"},
		{name: "portuguese confirm", key: LabelKeyConfirmButton, locale: "pt", expected: "Confirmar pedido"},
		{name: "english message", key: ErrKeyScreenNotFound, locale: "en", expected: "Screen not found or expired"},
		{name: "dutch message", key: ErrKeyInvalidRequest, locale: "nl", expected: "Ongeldig verzoek"},
		{name: "empty locale uses default", key: LabelKeyConfirmButton, locale: "", expected: "Confirmar pedido"},
		{name: "unsupported locale falls back", key: ErrKeyFoodNotFound, locale: "fr", expected: "Prato não encontrado"},
		{name: "unknown key returns key", key: "unknown.key", locale: "en", expected: "unknown.key"},
		{name: "unknown key in unsupported locale", key: "unknown.key", locale: "fr", expected: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_EveryLocaleHasEveryKey(t *testing.T) {
	messages := getDefaultMessages()
	reference := messages[DefaultLocale]

	for locale, localeMessages := range messages {
		for key := range reference {
			assert.Contains(t, localeMessages, key, "locale %s", locale)
		}
		assert.Len(t, localeMessages, len(reference), "locale %s", locale)
	}
}

func TestTranslator_Labels(t *testing.T) {
	labels := NewTranslator().Labels("en")

	assert.Equal(t, map[string]string{
		LabelKeyExtrasTitle:   "Extras",
		LabelKeyTotalTitle:    "Order total",
		LabelKeyConfirmButton: "Confirm order",
	}, labels)
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header returns default", acceptLanguage: "", expected: DefaultLocale},
		{name: "english header", acceptLanguage: "en", expected: "en"},
		{name: "portuguese with region", acceptLanguage: "pt-BR", expected: "pt"},
		{name: "dutch header", acceptLanguage: "nl", expected: "nl"},
		{name: "multiple languages", acceptLanguage: "en-US,en;q=0.9,pt;q=0.8", expected: "en"},
		{name: "unsupported language defaults", acceptLanguage: "fr", expected: DefaultLocale},
		{name: "case insensitive", acceptLanguage: "EN", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
