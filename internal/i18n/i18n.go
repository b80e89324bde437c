package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the language of the screen when the client sends none.
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// Labels returns the screen labels for a locale, keyed by label key.
func (t *Translator) Labels(locale string) map[string]string {
	return map[string]string{
		LabelKeyExtrasTitle:   t.Translate(LabelKeyExtrasTitle, locale),
		LabelKeyTotalTitle:    t.Translate(LabelKeyTotalTitle, locale),
		LabelKeyConfirmButton: t.Translate(LabelKeyConfirmButton, locale),
	}
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"pt": {
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.not_found":             "Não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.timeout":               "Tempo de requisição esgotado",
			"error.validation.food_id":    "food_id: deve ser um inteiro positivo",
			"error.validation.extra_id":   "extraId: deve ser um inteiro positivo",
			"error.screen_not_found":      "Tela não encontrada ou expirada",
			"error.screen_not_ready":      "O prato ainda não foi carregado",
			"error.food_not_found":        "Prato não encontrado",
			"error.gateway_unavailable":   "Não foi possível conectar ao servidor, tente novamente",
			"error.gateway_error":         "O servidor respondeu com um erro",

			"label.extras_title":   "Adicionais",
			"label.total_title":    "Total do pedido",
			"label.confirm_button": "Confirmar pedido",
			"label.order_placed":   "Pedido realizado",
		},
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.timeout":               "Request timed out",
			"error.validation.food_id":    "food_id: must be a positive integer",
			"error.validation.extra_id":   "extraId: must be a positive integer",
			"error.screen_not_found":      "Screen not found or expired",
			"error.screen_not_ready":      "The food has not been loaded yet",
			"error.food_not_found":        "Food not found",
			"error.gateway_unavailable":   "Could not reach the server, please try again",
			"error.gateway_error":         "The server answered with an error",

			"label.extras_title":   "Extras",
			"label.total_title":    "Order total",
			"label.confirm_button": "Confirm order",
			"label.order_placed":   "Order placed",
		},
		"nl": {
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.not_found":             "Niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.timeout":               "Verzoek verlopen",
			"error.validation.food_id":    "food_id: moet een positief geheel getal zijn",
			"error.validation.extra_id":   "extraId: moet een positief geheel getal zijn",
			"error.screen_not_found":      "Scherm niet gevonden of verlopen",
			"error.screen_not_ready":      "Het gerecht is nog niet geladen",
			"error.food_not_found":        "Gerecht niet gevonden",
			"error.gateway_unavailable":   "Kan de server niet bereiken, probeer het opnieuw",
			"error.gateway_error":         "De server antwoordde met een fout",

			"label.extras_title":   "Extra's",
			"label.total_title":    "Totaal van de bestelling",
			"label.confirm_button": "Bestelling bevestigen",
			"label.order_placed":   "Bestelling geplaatst",
		},
	}
}
