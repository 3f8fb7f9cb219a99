package layout

import (
	"strings"
	"unicode/utf8"
)

// Messages at or under this length render as a single line.
const singleLineLimit = 30

// MessageLines is the wrapped form of a card message.
type MessageLines struct {
	FirstLine   string `json:"firstLine"`
	SecondLine  string `json:"secondLine"`
	ShouldBreak bool   `json:"shouldBreak"`
}

// FormatMessage splits a message into at most two display lines at the word
// boundary nearest to the midpoint of the string. The result is
// deterministic and is the only line-breaking rule in the system; both
// rendering backends must consume it rather than re-wrapping text themselves.
func FormatMessage(message string) MessageLines {
	// Lengths are measured in characters, not bytes, so accented text and
	// emoji wrap the same as plain ASCII.
	if utf8.RuneCountInString(message) <= singleLineLimit {
		return MessageLines{FirstLine: message}
	}

	words := strings.Fields(message)
	if len(words) < 2 {
		return MessageLines{FirstLine: message}
	}

	half := utf8.RuneCountInString(message) / 2

	// Accumulate character counts word by word (one separating space per
	// word after the first) until the running count reaches the midpoint,
	// then pick whichever side of that word lands closer to it. Ties break
	// toward including the word.
	count := 0
	split := 0
	for i, w := range words {
		before := count
		if i > 0 {
			count++
		}
		count += utf8.RuneCountInString(w)

		if count >= half {
			distBefore := half - before
			distAfter := count - half
			if distAfter <= distBefore {
				split = i + 1
			} else {
				split = i
			}
			break
		}
	}

	if split <= 0 || split >= len(words) {
		return MessageLines{FirstLine: message}
	}

	return MessageLines{
		FirstLine:   strings.Join(words[:split], " "),
		SecondLine:  strings.Join(words[split:], " "),
		ShouldBreak: true,
	}
}
