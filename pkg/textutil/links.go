package textutil

import "strings"

// CollapseDuplicateLinks rewrites every "[<url>](<url>)" artifact to just the
// bracketed URL. The generator occasionally emits a markdown link whose label
// is the URL itself, which Telegram would render twice. Matching is a single
// left-to-right pass over non-overlapping occurrences; each URL segment ends
// at the first ']' or ')'.
func CollapseDuplicateLinks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] == '[' {
			if url, next, ok := matchDuplicateLink(text, i); ok {
				b.WriteString(url)
				i = next
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// matchDuplicateLink reports whether a duplicated-link artifact starts at
// offset i (which must point at '['). It returns the bracketed URL and the
// offset just past the closing parenthesis.
func matchDuplicateLink(text string, i int) (string, int, bool) {
	inner := text[i+1:]
	end := strings.IndexByte(inner, ']')
	if end < 0 || !looksLikeURL(inner[:end]) {
		return "", 0, false
	}
	rest := inner[end+1:]
	if len(rest) == 0 || rest[0] != '(' {
		return "", 0, false
	}
	closing := strings.IndexByte(rest, ')')
	if closing < 0 || !looksLikeURL(rest[1:closing]) {
		return "", 0, false
	}
	return inner[:end], i + 1 + end + 1 + closing + 1, true
}

func looksLikeURL(s string) bool {
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(s, scheme) && len(s) > len(scheme) {
			return true
		}
	}
	return false
}
