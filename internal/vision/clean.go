package vision

import "strings"

// CleanResponse strips the markdown code fences some models wrap around JSON
// output, despite the prompt asking for bare JSON. Anything else is returned
// unchanged; actual JSON validity is the payload decoder's job.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || first == "json" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
