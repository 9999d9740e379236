// Package i18n translates the control API's error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
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

// GetLocale picks the first supported language of the Accept-Language
// header, in the order the client listed them. Quality values are ignored.
func GetLocale(c *gin.Context) string {
	return GetTranslator().locale(c.GetHeader(AcceptLanguageHeader))
}

// Message translates key for the language the request asked for.
func Message(c *gin.Context, key string) string {
	t := GetTranslator()
	return t.Translate(key, t.locale(c.GetHeader(AcceptLanguageHeader)))
}

func (t *Translator) locale(acceptLang string) string {
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := t.messages[lang]; ok {
			return lang
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.not_found":                "Not found",
			"error.timeout":                  "The request timed out",
			"error.validation.items":         "items: at least one item with a positive count is required",
			"error.validation.listing_terms": "prices and limits must match the items",
			"error.validation.autosell_mode": "autosell_mode: must be compact or detailed",
			"error.validation.recipient":     "recipient: is required",
			"error.compose_disabled":         "A message is being sent, try again when it is done",
			"error.queue_full":               "Too many messages waiting to be sent",
			"error.game_unavailable":         "The game server is unavailable",
			"error.game_rejected":            "The game server rejected the request",
			"error.service_unavailable":      "The client is shutting down",
			"error.request_in_progress":      "A request with this Idempotency-Key is still running",
		},
		"pt": {
			"error.invalid_request":          "Requisição inválida",
			"error.invalid_request_body":     "Corpo da requisição inválido",
			"error.internal_error":           "Ocorreu um erro inesperado",
			"error.not_found":                "Não encontrado",
			"error.timeout":                  "A requisição expirou",
			"error.validation.items":         "items: informe ao menos um item com quantidade positiva",
			"error.validation.listing_terms": "preços e limites devem corresponder aos itens",
			"error.validation.autosell_mode": "autosell_mode: deve ser compact ou detailed",
			"error.validation.recipient":     "recipient: é obrigatório",
			"error.compose_disabled":         "Uma mensagem está sendo enviada, tente novamente em seguida",
			"error.queue_full":               "Muitas mensagens aguardando envio",
			"error.game_unavailable":         "O servidor do jogo está indisponível",
			"error.game_rejected":            "O servidor do jogo recusou a requisição",
			"error.service_unavailable":      "O cliente está sendo encerrado",
			"error.request_in_progress":      "Uma requisição com esta Idempotency-Key ainda está em andamento",
		},
		"nl": {
			"error.invalid_request":          "Ongeldig verzoek",
			"error.invalid_request_body":     "Ongeldige aanvraag body",
			"error.internal_error":           "Er is een onverwachte fout opgetreden",
			"error.not_found":                "Niet gevonden",
			"error.timeout":                  "Het verzoek is verlopen",
			"error.validation.items":         "items: minstens één item met een positief aantal is vereist",
			"error.validation.listing_terms": "prijzen en limieten moeten overeenkomen met de items",
			"error.validation.autosell_mode": "autosell_mode: moet compact of detailed zijn",
			"error.validation.recipient":     "recipient: is vereist",
			"error.compose_disabled":         "Er wordt een bericht verstuurd, probeer het daarna opnieuw",
			"error.queue_full":               "Te veel berichten wachten op verzending",
			"error.game_unavailable":         "De gameserver is niet bereikbaar",
			"error.game_rejected":            "De gameserver heeft het verzoek geweigerd",
			"error.service_unavailable":      "De client wordt afgesloten",
			"error.request_in_progress":      "Een verzoek met deze Idempotency-Key wordt nog uitgevoerd",
		},
	}
}
