// Package i18n resolves the request language and looks up user-facing messages.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Urdu    = "ur"

	// CookieName holds the language chosen through POST /api/language
	CookieName = "lang"
)

// order matches matcher's tag list
var supported = []string{English, Urdu}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Urdu})

// Supported reports whether lang is a language with a message catalog
func Supported(lang string) bool {
	return lang == English || lang == Urdu
}

// Resolve picks the response language: a supported lang cookie first, then the
// best Accept-Language match, then English.
func Resolve(cookie, acceptLanguage string) string {
	if c := strings.ToLower(strings.TrimSpace(cookie)); Supported(c) {
		return c
	}
	if acceptLanguage == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return supported[idx]
}

type ctxKey struct{}

// WithLang stores the resolved language in ctx
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext returns the request language, English when none was resolved
func FromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(ctxKey{}).(string); ok && Supported(lang) {
		return lang
	}
	return English
}

// T returns the message for key in lang, falling back to English and then to key itself
func T(lang, key string) string {
	if msg, ok := catalog[lang][key]; ok {
		return msg
	}
	if msg, ok := catalog[English][key]; ok {
		return msg
	}
	return key
}

// Required returns the per-field "required" message, e.g. requiredEmail for "email"
func Required(lang, field string) string {
	if field == "" {
		return T(lang, MsgRequiredFields)
	}
	key := "required" + strings.ToUpper(field[:1]) + field[1:]
	if msg := T(lang, key); msg != key {
		return msg
	}
	return T(lang, MsgRequiredFields)
}
