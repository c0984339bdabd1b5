package textutil

// MaxMessageLength is the largest outbound segment the transport accepts.
const MaxMessageLength = 4000

// Chunk splits text into contiguous segments of at most max characters each,
// preserving order; concatenating the result reproduces the input. Slicing is
// purely positional over runes so multi-byte characters are never cut in
// half. Empty input yields no chunks.
func Chunk(text string, max int) []string {
	if max <= 0 || text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for start := 0; start < len(runes); start += max {
		end := start + max
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
