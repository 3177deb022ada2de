package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first rune and leaves the remainder
// untouched: "fooBar" becomes "FooBar", not "Foobar".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// DisplayName derives a human-readable name from a package identifier
// by splitting on '-' only and capitalizing each segment.  Dots are
// deliberately not split points, so "python313Packages.numpy" stays a
// single token "Python313Packages.numpy".  That reading is surprising
// but relied upon by existing launchers; do not "fix" it.
func DisplayName(pname string) string {
	segments := strings.Split(pname, "-")
	for i, segment := range segments {
		segments[i] = Capitalize(segment)
	}
	return strings.Join(segments, " ")
}

// TerminalCommand derives the token a user types to launch the app
// from the resolved executable name: the whole string lowercased,
// nothing else ("Discord" -> "discord").
func TerminalCommand(exe string) string {
	return strings.ToLower(exe)
}
