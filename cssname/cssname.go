// Package cssname converts CSS property names between the kebab-case form used
// by stylesheets and computed-style lookups and the camelCase form used for
// inline style assignment.
package cssname

import "strings"

// vendorPrefixes are the prefixes whose camelCase form drops the leading dash,
// e.g. "-webkit-transition" <-> "webkitTransition".
var vendorPrefixes = []string{"webkit", "moz", "ms", "o"}

// Kebab converts a camelCase property name to kebab-case.
// Examples: "backgroundColor" -> "background-color", "webkitTransition" -> "-webkit-transition".
// Names that already contain a dash, including custom properties ("--x"), are
// returned unchanged.
func Kebab(name string) string {
	if name == "" || strings.Contains(name, "-") {
		return name
	}

	var result strings.Builder
	if prefix := vendorPrefix(name); prefix != "" {
		result.WriteByte('-')
		result.WriteString(strings.ToLower(prefix))
		name = name[len(prefix):]
		if name != "" {
			result.WriteByte('-')
			result.WriteByte(lower(name[0]))
			name = name[1:]
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(lower(c))
			continue
		}
		result.WriteByte(c)
	}
	return result.String()
}

// Camel converts a kebab-case property name to camelCase.
// Examples: "background-color" -> "backgroundColor", "-ms-transition" -> "msTransition".
// Custom properties ("--main-color") are returned unchanged.
func Camel(name string) string {
	if name == "" || strings.HasPrefix(name, "--") {
		return name
	}
	name = strings.TrimPrefix(name, "-")

	parts := strings.Split(name, "-")
	var result strings.Builder
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			result.WriteString(part)
			first = false
			continue
		}
		result.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return result.String()
}

// vendorPrefix returns the vendor prefix that name starts with, if it is
// directly followed by an upper-case letter. Both "webkitX" and "WebkitX" match.
func vendorPrefix(name string) string {
	for _, p := range vendorPrefixes {
		if len(name) <= len(p) || !strings.EqualFold(name[:len(p)], p) {
			continue
		}
		if c := name[len(p)]; c >= 'A' && c <= 'Z' {
			return name[:len(p)]
		}
	}
	return ""
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
