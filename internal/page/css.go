package page

import (
	"regexp"
	"strings"
)

// backgroundPattern captures, in order: the property up to url(, the opening
// quote, the reference, the closing quote and the closing paren.
var backgroundPattern = regexp.MustCompile(`(?i)(background(?:-image)?\s*:[^;]*?url\(\s*)(['"]?)([^'")]+)(['"]?)(\s*\))`)

func backgroundURL(style string) (string, bool) {
	m := backgroundPattern.FindStringSubmatch(style)
	if m == nil {
		return "", false
	}
	ref := strings.TrimSpace(m[3])
	return ref, ref != ""
}

// replaceBackgroundURL swaps the first background url() reference in style,
// keeping its quoting.
func replaceBackgroundURL(style, target string) (string, bool) {
	loc := backgroundPattern.FindStringSubmatchIndex(style)
	if loc == nil {
		return style, false
	}
	return style[:loc[6]] + target + style[loc[7]:], true
}
