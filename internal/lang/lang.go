// Package lang implements the bilingual field resolution used across the
// public pages: Thai is served when requested and present, English otherwise.
package lang

import "strings"

type Lang string

const (
	TH Lang = "th"
	EN Lang = "en"
)

// Parse maps a raw language selector to a Lang. Anything that is not Thai,
// in any casing, is English.
func Parse(raw string) Lang {
	if strings.EqualFold(strings.TrimSpace(raw), "th") {
		return TH
	}
	return EN
}

// Resolve picks the Thai value only when Thai is requested and the value is
// non-empty; every other combination yields the English value.
func Resolve(l Lang, th, en string) string {
	if l == TH && th != "" {
		return th
	}
	return en
}

// ResolvePtr is Resolve for optional Thai fields.
func ResolvePtr(l Lang, th *string, en string) string {
	if th == nil {
		return en
	}
	return Resolve(l, *th, en)
}
