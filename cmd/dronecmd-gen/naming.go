package main

import (
	"strings"
	"unicode"
)

// splitName splits a schema name on underscores, dashes, dots and spaces.
func splitName(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// goName converts a feature, class, command or argument name to an exported
// identifier. Acronyms such as PCMD are kept: "start_flip" -> "StartFlip",
// "PCMD" -> "PCMD".
func goName(s string) string {
	var b strings.Builder
	for _, p := range splitName(s) {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// valueName converts an enum value name. Upper-case words are title-cased:
// "HORIZONTAL_PANORAMA" -> "HorizontalPanorama", "takingoff" -> "Takingoff".
func valueName(s string) string {
	var b strings.Builder
	for _, p := range splitName(s) {
		if isAllUpper(p) {
			p = strings.ToLower(p)
		}
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// firstLower lower-cases the first letter unless it starts an acronym.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if len(r) > 1 && unicode.IsUpper(r[1]) {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// fileName converts a feature name to a file stem: "ardrone3" -> "ardrone3",
// "ThermalCam" -> "thermal_cam".
func fileName(name string) string {
	var result strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteByte('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// sentence trims a description and drops a trailing period so templates can
// append their own.
func sentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSuffix(s, ".")
}
