package latex

import "strings"

// Escape neutralizes LaTeX-reserved characters in user-origin text and turns
// embedded newlines into explicit line breaks. It runs in a single pass over
// the input, so already-escaped output must never be passed back in.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString(`\&`)
		case '%':
			b.WriteString(`\%`)
		case '$':
			b.WriteString(`\$`)
		case '#':
			b.WriteString(`\#`)
		case '_':
			b.WriteString(`\_`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '\n':
			b.WriteString(`\newline{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
