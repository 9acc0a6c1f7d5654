// Package i18n translates user-facing messages and formats money, counts and
// postal codes for the storefront's locales.
package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the storefront's language (Brazilian Portuguese).
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"

	localeContextKey = "locale"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supportedLocales is ordered like supportedTags; the first entry is the fallback.
	supportedLocales = []string{"pt", "en", "nl"}
	supportedTags    = []language.Tag{language.BrazilianPortuguese, language.English, language.Dutch}
	matcher          = language.NewMatcher(supportedTags)
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
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if localeMessages, ok := t.messages[locale]; ok {
		if msg, ok := localeMessages[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// TranslateWith translates key and substitutes {name} placeholders from params.
func (t *Translator) TranslateWith(key, locale string, params map[string]string) string {
	msg := t.Translate(key, locale)
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Plural picks key.one or key.other for count and substitutes {count}.
func (t *Translator) Plural(key, locale string, count int) string {
	form := ".other"
	if count == 1 {
		form = ".one"
	}
	return t.TranslateWith(key+form, locale, map[string]string{"count": strconv.Itoa(count)})
}

// GetLocale resolves the request locale from Accept-Language.
// The result is cached on the context.
func GetLocale(c *gin.Context) string {
	if cached, ok := c.Get(localeContextKey); ok {
		if locale, ok := cached.(string); ok {
			return locale
		}
	}

	locale := MatchLocale(c.GetHeader(AcceptLanguageHeader))
	c.Set(localeContextKey, locale)
	return locale
}

// MatchLocale returns the supported locale that best matches an Accept-Language value.
func MatchLocale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}
