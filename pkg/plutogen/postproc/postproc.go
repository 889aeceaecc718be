// Package postproc cleans generated procedure text before it is written.
package postproc

import "strings"

// StripForbidden drops every character the procedure editor rejects. Tabs,
// newlines and printable ASCII are kept, except for '{', '|' and '}'.
func StripForbidden(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return r
		case r == '{' || r == '|' || r == '}':
			return -1
		case r >= ' ' && r <= '~':
			return r
		default:
			return -1
		}
	}, s)
}

const stepOpen = "initiate and confirm step"

// RemoveEmptySteps drops step openers directly followed by their closer,
// together with that closer.
func RemoveEmptySteps(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) &&
			strings.HasPrefix(strings.TrimSpace(lines[i]), stepOpen) &&
			strings.HasPrefix(strings.TrimSpace(lines[i+1]), "end step") {
			i++
			continue
		}
		out = append(out, lines[i])
	}
	return strings.Join(out, "\n")
}

// CommentStray turns every line of a documentation header that is not
// already a comment into one, so copied front-page text cannot leak into
// code.
func CommentStray(header string) string {
	lines := strings.Split(header, "\n")
	for i, l := range lines {
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		lines[i] = "//\t\t\t\t\t" + l
	}
	return strings.Join(lines, "\n")
}

// Clean applies StripForbidden and RemoveEmptySteps to a whole procedure.
func Clean(s string) string {
	return RemoveEmptySteps(StripForbidden(s))
}
