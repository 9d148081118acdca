// Package locale derives the counting locale from POSIX locale names and
// environment variables.
package locale

import (
	"os"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/uwc"
)

// singleByteCodeset matches the codeset part of locale names that denote a
// legacy 8-bit encoding. Everything else is treated as UTF-8, which is what
// every modern system default resolves to.
var singleByteCodeset = mustCompile(`(?i)^(latin-?1|iso-?8859(-?[0-9]+)?|us-?ascii|ansi_x3\.4-1968|cp-?125[0-8]|koi8-?[ru])$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic("locale: " + err.Error())
	}
	return re
}

// Detect resolves the process locale the way wc does: LC_ALL overrides
// LC_CTYPE overrides LANG; an unset environment means the C locale on paper,
// but like the reference implementation we default to UTF-8, matching what
// users of modern distributions expect.
func Detect() uwc.Locale {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if name := os.Getenv(v); name != "" {
			return FromName(name)
		}
	}
	return uwc.LocaleUTF8
}

// FromName classifies a POSIX locale name (lang_TERRITORY.CODESET@modifier).
// "C" and "POSIX" are single-byte; otherwise the codeset decides, with UTF-8
// as the default when no codeset is given.
func FromName(name string) uwc.Locale {
	if name == "C" || name == "POSIX" {
		return uwc.LocaleSingleByte
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	codeset := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		codeset = name[i+1:]
	}
	if singleByteCodeset.MatchString(codeset) {
		return uwc.LocaleSingleByte
	}
	return uwc.LocaleUTF8
}
